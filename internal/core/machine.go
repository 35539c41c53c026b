// Package core provides the runtime tier of a calculator session: an
// event-driven actor that owns a calcx.Calculator, applies queued input
// events one at a time, and reports each change to a publisher, a metrics
// recorder and the logger.
package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/logfields"
	"github.com/comalice/calcx/internal/metrics"
	"github.com/comalice/calcx/internal/primitives"
)

var (
	ErrQueueFull  = errors.New("event queue full (backpressure)")
	ErrStopped    = errors.New("machine stopped")
	ErrNotStarted = errors.New("machine not started")
)

// Pluggable component interfaces.

type EventSource interface {
	Events() <-chan primitives.Event
}

// ChangeMetadata describes the session and timing of a published change.
type ChangeMetadata struct {
	SessionID string      `json:"sessionID" yaml:"sessionID"`
	Before    calcx.State `json:"before" yaml:"before"`
	Changed   bool        `json:"changed" yaml:"changed"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event primitives.Event, state calcx.State, metadata ChangeMetadata) error
	Close() error
}

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// queued is either an input event or, when ack is set, a flush barrier.
type queued struct {
	event primitives.Event
	ack   chan struct{}
}

// Machine is one calculator session.
// Thread-safe for concurrent Send() from multiple goroutines; events are
// applied in queue order by a single goroutine.
type Machine struct {
	id         string
	calc       *calcx.Calculator
	logger     *slog.Logger
	recorder   metrics.Recorder
	eventQueue chan queued

	mu         sync.Mutex
	started    bool
	done       chan struct{}
	stopped    chan struct{}
	sourceDone chan struct{}

	eventSource EventSource
	publisher   EventPublisher
}

// NewMachine creates a session around calc. A nil calc gets a fresh
// Calculator.
func NewMachine(calc *calcx.Calculator, opts ...Option) *Machine {
	if calc == nil {
		calc = calcx.New()
	}
	m := &Machine{
		id:         uuid.NewString(),
		calc:       calc,
		logger:     slog.Default(),
		recorder:   metrics.NoopRecorder{},
		eventQueue: make(chan queued, 64),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		sourceDone: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logfields.SessionID(m.id))

	return m
}

// ID returns the session ID.
func (m *Machine) ID() string { return m.id }

// Calculator returns the session's calculator.
func (m *Machine) Calculator() *calcx.Calculator { return m.calc }

// State returns the current calculator state.
func (m *Machine) State() calcx.State { return m.calc.State() }

// Start launches the event processing goroutine and, if configured, the
// event source forwarder.
// Idempotent: safe to call multiple times (no-op after first).
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return ErrStopped
	default:
	}
	if m.started {
		return nil
	}
	m.started = true

	go m.interpret()

	if m.eventSource != nil {
		go m.forward()
	} else {
		close(m.sourceDone)
	}

	m.logger.Debug("session started", logfields.QueueSize(cap(m.eventQueue)))
	return nil
}

// forward moves events from the source into the queue, blocking while the
// queue is full, until the source closes or the machine stops.
func (m *Machine) forward() {
	defer close(m.sourceDone)
	events := m.eventSource.Events()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			select {
			case m.eventQueue <- queued{event: event}:
			case <-m.done:
				return
			}
		case <-m.done:
			return
		}
	}
}

// interpret is the private event loop goroutine.
// On shutdown it drains events already queued before returning.
func (m *Machine) interpret() {
	defer close(m.stopped)
	for {
		select {
		case q := <-m.eventQueue:
			m.handle(q)
		case <-m.done:
			for {
				select {
				case q := <-m.eventQueue:
					m.handle(q)
				default:
					return
				}
			}
		}
	}
}

func (m *Machine) handle(q queued) {
	if q.ack != nil {
		close(q.ack)
		return
	}
	m.processEvent(q.event)
	m.recorder.SetQueueDepth(len(m.eventQueue))
}

func (m *Machine) processEvent(event primitives.Event) {
	t, err := Apply(m.calc.Store(), event)
	if err != nil {
		m.logger.Warn("input rejected", logfields.Input(event.String()), logfields.Error(err))
		return
	}

	outcome := metrics.OutcomeIgnored
	if t.Changed() {
		outcome = metrics.OutcomeApplied
	}
	m.recorder.IncInput(string(event.Type), outcome)
	if t.Evaluated {
		m.recorder.IncEvaluation(t.Computed)
		if !t.Computed {
			m.logger.Warn("expression not computable",
				logfields.Previous(t.Before.PreviousOperand),
				logfields.Current(t.Before.CurrentOperand),
				logfields.Operation(t.Before.Operation.Name()))
		}
	}
	m.logger.Debug("input processed",
		logfields.Input(event.String()),
		logfields.Outcome(string(outcome)),
		logfields.Current(t.After.CurrentOperand),
		logfields.Previous(t.After.PreviousOperand),
		logfields.Operation(t.After.Operation.Name()))

	if m.publisher != nil {
		md := ChangeMetadata{
			SessionID: m.id,
			Before:    t.Before,
			Changed:   t.Changed(),
			Timestamp: time.Now(),
		}
		if err := m.publisher.Publish(context.Background(), event, t.After, md); err != nil {
			m.logger.Warn("publish failed", logfields.Error(err))
		}
	}
}

// Send enqueues an event for asynchronous processing.
// Returns ErrQueueFull on backpressure instead of blocking.
// Thread-safe.
func (m *Machine) Send(event primitives.Event) error {
	select {
	case <-m.done:
		return ErrStopped
	default:
	}
	select {
	case m.eventQueue <- queued{event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Flush blocks until every event queued before the call has been applied.
func (m *Machine) Flush(ctx context.Context) error {
	m.mu.Lock()
	started := m.started
	m.mu.Unlock()
	if !started {
		return ErrNotStarted
	}

	ack := make(chan struct{})
	select {
	case m.eventQueue <- queued{ack: ack}:
	case <-m.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-m.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the configured event source is exhausted and every
// event it produced has been applied.
func (m *Machine) Wait(ctx context.Context) error {
	select {
	case <-m.sourceDone:
	case <-ctx.Done():
		return ctx.Err()
	}
	return m.Flush(ctx)
}

// Stop signals graceful shutdown and waits for queued events to be applied.
// Safe to call multiple times. The publisher is closed once the loop exits.
func (m *Machine) Stop() error {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		<-m.stopped
		return nil
	default:
	}
	close(m.done)
	started := m.started
	m.mu.Unlock()

	if !started {
		close(m.stopped)
	} else {
		<-m.stopped
		m.logger.Debug("session stopped")
	}
	if m.publisher != nil {
		return m.publisher.Close()
	}
	return nil
}
