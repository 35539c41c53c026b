// Package calcx implements the input/state engine of a four-function
// calculator: operand entry, operator chaining and evaluation as pure
// transitions over an immutable State, plus a Store that holds the current
// State and notifies observers.
package calcx

import "fmt"

// MaxOperandLength is the maximum number of characters accepted while typing
// an operand.
const MaxOperandLength = 12

// Digit is a single entry key: "0".."9" or ".".
type Digit string

const (
	Digit0     Digit = "0"
	Digit1     Digit = "1"
	Digit2     Digit = "2"
	Digit3     Digit = "3"
	Digit4     Digit = "4"
	Digit5     Digit = "5"
	Digit6     Digit = "6"
	Digit7     Digit = "7"
	Digit8     Digit = "8"
	Digit9     Digit = "9"
	DecimalDot Digit = "."
)

// Digits lists every valid Digit in keypad order.
var Digits = []Digit{Digit0, Digit1, Digit2, Digit3, Digit4, Digit5, Digit6, Digit7, Digit8, Digit9, DecimalDot}

// ParseDigit returns the Digit for s.
func ParseDigit(s string) (Digit, bool) {
	for _, d := range Digits {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Operation is one of the four arithmetic operators. The zero value means no
// operation is pending.
type Operation string

const (
	NoOperation Operation = ""
	Divide      Operation = "÷"
	Multiply    Operation = "x"
	Add         Operation = "+"
	Subtract    Operation = "-"
)

// Operations lists the valid operations in keypad order.
var Operations = []Operation{Divide, Multiply, Add, Subtract}

// ParseOperation maps an operator symbol to an Operation. Besides the display
// symbols it accepts "/", "*" and "×".
func ParseOperation(s string) (Operation, bool) {
	switch s {
	case "÷", "/":
		return Divide, true
	case "x", "X", "*", "×":
		return Multiply, true
	case "+":
		return Add, true
	case "-", "−":
		return Subtract, true
	}
	return NoOperation, false
}

// Name returns a lower-case word for the operation, used in logs and metrics.
func (o Operation) Name() string {
	switch o {
	case Divide:
		return "divide"
	case Multiply:
		return "multiply"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case NoOperation:
		return "none"
	}
	return "unknown"
}

// State is one immutable snapshot of the calculator. Transitions return a new
// State and never modify their input.
//
// An empty operand string means the operand is absent.
type State struct {
	CurrentOperand  string    `json:"currentOperand" yaml:"currentOperand"`
	PreviousOperand string    `json:"previousOperand" yaml:"previousOperand"`
	Operation       Operation `json:"operation" yaml:"operation"`
	Overwrite       bool      `json:"overwrite" yaml:"overwrite"`
}

// Initial returns the state the calculator starts in and returns to on clear.
func Initial() State {
	return State{CurrentOperand: "0"}
}

// HasCurrent reports whether the current operand is present.
func (s State) HasCurrent() bool { return s.CurrentOperand != "" }

// HasPrevious reports whether the previous operand is present.
func (s State) HasPrevious() bool { return s.PreviousOperand != "" }

// HasOperation reports whether an operation is pending.
func (s State) HasOperation() bool { return s.Operation != NoOperation }

func (s State) String() string {
	return fmt.Sprintf("{current:%q previous:%q op:%q overwrite:%t}",
		s.CurrentOperand, s.PreviousOperand, string(s.Operation), s.Overwrite)
}
