package extensibility

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/primitives"
)

func collect(ch <-chan primitives.Event) []primitives.Event {
	var out []primitives.Event
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func TestChannelEventSource(t *testing.T) {
	ch := make(chan primitives.Event, 1)
	s := NewChannelEventSource(ch)
	ch <- primitives.ClearEvent()
	assert.Equal(t, primitives.ClearEvent(), <-s.Events())
}

func TestReaderEventSource(t *testing.T) {
	s := NewReaderEventSource(context.Background(), strings.NewReader("1+2\n=\n"))
	got := collect(s.Events())

	assert.Equal(t, []primitives.Event{
		primitives.DigitEvent(calcx.Digit1),
		primitives.OperationEvent(calcx.Add),
		primitives.DigitEvent(calcx.Digit2),
		primitives.EqualsEvent(),
	}, got)
	assert.NoError(t, s.Err())
}

func TestReaderEventSource_SkipsBadLines(t *testing.T) {
	var badLines []string
	s := NewReaderEventSource(context.Background(), strings.NewReader("4\n4%\n2\n"),
		WithLineErrorHandler(func(line string, err error) {
			assert.ErrorIs(t, err, primitives.ErrUnknownKey)
			badLines = append(badLines, line)
		}))
	got := collect(s.Events())

	assert.Equal(t, []primitives.Event{
		primitives.DigitEvent(calcx.Digit4),
		primitives.DigitEvent(calcx.Digit2),
	}, got)
	assert.Equal(t, []string{"4%"}, badLines)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReaderEventSource_ReadError(t *testing.T) {
	s := NewReaderEventSource(context.Background(), failingReader{})
	assert.Empty(t, collect(s.Events()))
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "disk on fire")
}

func TestReaderEventSource_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	s := NewReaderEventSource(ctx, pr)

	go func() {
		// more events than the channel buffers, never consumed
		_, _ = pw.Write([]byte(strings.Repeat("1", 64) + "\n"))
	}()
	<-s.Events()
	cancel()
	collect(s.Events())
	assert.ErrorIs(t, s.Err(), context.Canceled)
	pw.Close()
}
