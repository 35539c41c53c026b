package core

import (
	"log/slog"

	"github.com/comalice/calcx/internal/metrics"
)

// WithEventSource configures the Machine with an EventSource whose events are
// queued after Start.
func WithEventSource(s EventSource) Option {
	return func(m *Machine) {
		m.eventSource = s
	}
}

// WithPublisher configures the Machine with an EventPublisher.
func WithPublisher(pb EventPublisher) Option {
	return func(m *Machine) {
		m.publisher = pb
	}
}

// WithRecorder configures the metrics Recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(m *Machine) {
		if r != nil {
			m.recorder = r
		}
	}
}

// WithLogger configures the logger; the session ID is attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithQueueSize configures the event queue buffer size.
func WithQueueSize(size int) Option {
	return func(m *Machine) {
		if size > 0 {
			m.eventQueue = make(chan queued, size)
		}
	}
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}
