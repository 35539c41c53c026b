package calcx

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Evaluate applies the pending operation to the previous and current
// operands, previous on the left. A missing or unknown operation adds.
//
// The boolean is false when either operand is absent or does not parse as a
// number; the returned text is then empty and must not be used.
func Evaluate(s State) (string, bool) {
	left, ok := parseOperand(s.PreviousOperand)
	if !ok {
		return "", false
	}
	right, ok := parseOperand(s.CurrentOperand)
	if !ok {
		return "", false
	}

	var v float64
	switch s.Operation {
	case Divide:
		v = left / right
	case Multiply:
		v = left * right
	case Subtract:
		v = left - right
	default:
		v = left + right
	}
	return FormatNumber(v), true
}

// FormatNumber renders v as the shortest decimal text that parses back to v.
// Magnitudes below 1e-6 or at least 1e21 use exponent notation.
func FormatNumber(v float64) string {
	if v == 0 {
		// drops the sign of negative zero
		return "0"
	}
	abs := math.Abs(v)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && (abs < 1e-6 || abs >= 1e21) {
		return trimExponent(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops leading zeros from the exponent: 1.5e-07 becomes 1.5e-7.
func trimExponent(text string) string {
	i := strings.IndexByte(text, 'e')
	if i < 0 || i+2 >= len(text) {
		return text
	}
	mantissa, sign, digits := text[:i], text[i+1], strings.TrimLeft(text[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}

// parseOperand reports false for absent, malformed and NaN operands.
func parseOperand(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Clear returns the initial state.
func Clear() State {
	return Initial()
}

// AddDigit appends digit to the operand being typed. Input that would break
// the operand grammar (a second leading zero, a second decimal point, more
// than MaxOperandLength characters) leaves the state unchanged.
func AddDigit(s State, digit Digit) State {
	cur := s.CurrentOperand

	if s.Overwrite && cur != "" {
		// A result is showing: start a fresh operand. A lone "." is kept as
		// typed.
		s.CurrentOperand = string(digit)
		s.Overwrite = false
		return s
	}
	if digit == Digit0 && cur == "0" {
		return s
	}
	if digit == DecimalDot && strings.Contains(cur, ".") {
		return s
	}
	if digit == DecimalDot && cur == "" {
		s.CurrentOperand = "0."
		return s
	}
	if len(cur) >= MaxOperandLength {
		return s
	}
	if cur == "0" && digit != DecimalDot {
		s.CurrentOperand = string(digit)
		return s
	}
	s.CurrentOperand = cur + string(digit)
	return s
}

// RemoveDigit deletes the last character of the current operand. After a
// result it clears the operand instead.
func RemoveDigit(s State) State {
	switch {
	case s.Overwrite:
		s.Overwrite = false
		s.CurrentOperand = ""
	case s.CurrentOperand == "":
	case len(s.CurrentOperand) == 1:
		s.CurrentOperand = ""
	default:
		s.CurrentOperand = s.CurrentOperand[:len(s.CurrentOperand)-1]
	}
	return s
}

// SetOperation selects op as the pending operation. With an expression
// already pending and a right-hand operand typed, the expression is evaluated
// first and its result becomes the new left-hand operand.
func SetOperation(s State, op Operation) State {
	switch {
	case !s.HasCurrent() && s.HasPrevious():
		s.Operation = op
		return s
	case !s.HasCurrent():
		return s
	case s.HasPrevious():
		result, ok := Evaluate(s)
		if !ok {
			result = ""
		}
		return State{PreviousOperand: result, Operation: op}
	default:
		return State{PreviousOperand: s.CurrentOperand, CurrentOperand: "0", Operation: op}
	}
}

// SetResult evaluates the pending expression and shows the result. It does
// nothing unless both operands and an operation are present.
func SetResult(s State) State {
	if !s.HasCurrent() || !s.HasOperation() || !s.HasPrevious() {
		return s
	}
	result, ok := Evaluate(s)
	if !ok {
		result = ""
	}
	return State{CurrentOperand: result, Overwrite: true}
}
