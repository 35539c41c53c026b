// Package extensibility provides pluggable event sources and observers for
// calculator sessions.
package extensibility

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/comalice/calcx/internal/logfields"
	"github.com/comalice/calcx/internal/primitives"
)

// ChannelEventSource is an EventSource implementation backed by a Go channel.
// Provides a simple way to feed external events into a Machine.
type ChannelEventSource struct {
	ch chan primitives.Event
}

// NewChannelEventSource creates a new ChannelEventSource with the given channel.
// The channel should be buffered if backpressure handling is needed.
func NewChannelEventSource(ch chan primitives.Event) *ChannelEventSource {
	return &ChannelEventSource{ch: ch}
}

// Events returns the receive-only channel for events.
func (s *ChannelEventSource) Events() <-chan primitives.Event {
	return s.ch
}

// ReaderEventSource reads key lines from an io.Reader and emits their events.
// A line with an unknown key is skipped entirely and reported through
// OnError; reading continues with the next line.
type ReaderEventSource struct {
	ch      chan primitives.Event
	logger  *slog.Logger
	onError func(line string, err error)

	mu  sync.Mutex
	err error
}

// ReaderOption configures a ReaderEventSource.
type ReaderOption func(*ReaderEventSource)

// WithLineErrorHandler is called for every line that fails to parse.
func WithLineErrorHandler(fn func(line string, err error)) ReaderOption {
	return func(s *ReaderEventSource) { s.onError = fn }
}

// WithSourceLogger sets the logger used for skipped lines.
func WithSourceLogger(l *slog.Logger) ReaderOption {
	return func(s *ReaderEventSource) { s.logger = l }
}

// NewReaderEventSource starts reading r in a goroutine. The event channel is
// closed at end of input, on a read error, or when ctx is done.
func NewReaderEventSource(ctx context.Context, r io.Reader, opts ...ReaderOption) *ReaderEventSource {
	s := &ReaderEventSource{
		ch:     make(chan primitives.Event, 16),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run(ctx, r)
	return s
}

func (s *ReaderEventSource) run(ctx context.Context, r io.Reader) {
	defer close(s.ch)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		events, err := primitives.ParseKeys(line)
		if err != nil {
			s.logger.Warn("skipping input line", logfields.Input(line), logfields.Error(err))
			if s.onError != nil {
				s.onError(line, err)
			}
			continue
		}
		for _, e := range events {
			select {
			case s.ch <- e:
			case <-ctx.Done():
				s.setErr(ctx.Err())
				return
			}
		}
	}
	s.setErr(scanner.Err())
}

func (s *ReaderEventSource) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Events returns the event channel.
func (s *ReaderEventSource) Events() <-chan primitives.Event {
	return s.ch
}

// Err returns the error that stopped reading, if any. Valid after the event
// channel is closed.
func (s *ReaderEventSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
