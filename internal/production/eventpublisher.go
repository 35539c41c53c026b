// Package production provides the presentation-side collaborators of a
// calculator session: change publishing and locale-aware display formatting.
package production

import (
	"context"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/core"
	"github.com/comalice/calcx/internal/primitives"
)

// PublishedChange bundles an input event with the state it produced.
type PublishedChange struct {
	Event    primitives.Event
	State    calcx.State
	Metadata core.ChangeMetadata
}

// ChannelPublisher forwards changes to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- PublishedChange
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- PublishedChange) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event primitives.Event, state calcx.State, metadata core.ChangeMetadata) error {
	select {
	case p.ch <- PublishedChange{Event: event, State: state, Metadata: metadata}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
