package core

import (
	"fmt"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/primitives"
)

// Transition records the effect of one input on a Store.
type Transition struct {
	Event  primitives.Event
	Before calcx.State
	After  calcx.State
	// Evaluated is set when the input evaluated a pending expression;
	// Computed then tells whether the result was a number.
	Evaluated bool
	Computed  bool
}

// Changed reports whether the input altered the state.
func (t Transition) Changed() bool { return t.Before != t.After }

// Apply runs the transition selected by e against store in a single Update.
// It returns an error only when e carries no valid input.
func Apply(store *calcx.Store, e primitives.Event) (Transition, error) {
	fn, err := transitionFor(e)
	if err != nil {
		return Transition{}, err
	}

	t := Transition{Event: e}
	t.After = store.Update(func(s calcx.State) calcx.State {
		t.Before = s
		return fn(s)
	})

	switch e.Type {
	case primitives.EventEquals:
		t.Evaluated = t.Before.HasCurrent() && t.Before.HasOperation() && t.Before.HasPrevious()
		t.Computed = t.Evaluated && t.After.HasCurrent()
	case primitives.EventOperation:
		t.Evaluated = t.Before.HasCurrent() && t.Before.HasPrevious()
		t.Computed = t.Evaluated && t.After.HasPrevious()
	}
	return t, nil
}

func transitionFor(e primitives.Event) (func(calcx.State) calcx.State, error) {
	switch e.Type {
	case primitives.EventDigit:
		d, ok := e.Data.(calcx.Digit)
		if !ok {
			return nil, fmt.Errorf("digit event carries %T", e.Data)
		}
		return func(s calcx.State) calcx.State { return calcx.AddDigit(s, d) }, nil
	case primitives.EventOperation:
		op, ok := e.Data.(calcx.Operation)
		if !ok {
			return nil, fmt.Errorf("operation event carries %T", e.Data)
		}
		return func(s calcx.State) calcx.State { return calcx.SetOperation(s, op) }, nil
	case primitives.EventDelete:
		return calcx.RemoveDigit, nil
	case primitives.EventEquals:
		return calcx.SetResult, nil
	case primitives.EventClear:
		return func(calcx.State) calcx.State { return calcx.Clear() }, nil
	}
	return nil, fmt.Errorf("unsupported event type %q", e.Type)
}
