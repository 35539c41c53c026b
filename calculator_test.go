package calcx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/comalice/calcx"
)

func TestCalculator_SimpleAddition(t *testing.T) {
	c := New()
	c.Clear()
	c.AddDigit(Digit7)
	c.SetOperation(Add)
	c.AddDigit(Digit3)
	got := c.SetResult()

	assert.Equal(t, State{CurrentOperand: "10", Overwrite: true}, got)
	assert.Equal(t, got, c.State())

	got = c.AddDigit(Digit5)
	assert.Equal(t, State{CurrentOperand: "5"}, got)
}

func TestCalculator_Chaining(t *testing.T) {
	c := New()
	c.AddDigit(Digit5)
	c.SetOperation(Add)
	c.AddDigit(Digit3)
	got := c.SetOperation(Multiply)
	require.Equal(t, State{PreviousOperand: "8", Operation: Multiply}, got)

	c.AddDigit(Digit2)
	assert.Equal(t, State{CurrentOperand: "16", Overwrite: true}, c.SetResult())
}

func TestCalculator_ResultThenOperator(t *testing.T) {
	c := New()
	c.AddDigit(Digit9)
	c.SetOperation(Divide)
	c.AddDigit(Digit3)
	c.SetResult()
	c.SetOperation(Subtract)
	c.AddDigit(Digit1)

	assert.Equal(t, State{CurrentOperand: "2", Overwrite: true}, c.SetResult())
}

func TestCalculator_BackspaceAfterResult(t *testing.T) {
	c := New()
	c.AddDigit(Digit2)
	c.SetOperation(Multiply)
	c.AddDigit(Digit4)
	c.SetResult()

	assert.Equal(t, State{}, c.RemoveDigit())
	assert.Equal(t, State{CurrentOperand: "0."}, c.AddDigit(DecimalDot))
}

func TestCalculator_DecimalEntry(t *testing.T) {
	c := New()
	for _, d := range []Digit{DecimalDot, Digit5, DecimalDot, Digit0} {
		c.AddDigit(d)
	}
	assert.Equal(t, "0.50", c.State().CurrentOperand)
}

func TestCalculator_ObserverSeesEveryInput(t *testing.T) {
	c := New()
	var seen []string
	unsubscribe := c.Subscribe(func(s State) { seen = append(seen, s.CurrentOperand) })
	defer unsubscribe()

	c.AddDigit(Digit1)
	c.AddDigit(Digit2)
	c.RemoveDigit()
	c.Clear()

	assert.Equal(t, []string{"0", "1", "12", "1", "0"}, seen)
}

func TestCalculator_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.AddDigit(Digit8)
	assert.Equal(t, "8", a.State().CurrentOperand)
	assert.Equal(t, "0", b.State().CurrentOperand)
}

func TestCalculator_SharedStore(t *testing.T) {
	store := NewStore(State{CurrentOperand: "4"})
	c := NewWithStore(store)
	c.AddDigit(Digit2)
	assert.Same(t, store, c.Store())
	assert.Equal(t, "42", store.Get().CurrentOperand)
}
