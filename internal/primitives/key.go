package primitives

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/calcx"
)

// ErrUnknownKey is returned for input that names no calculator key.
var ErrUnknownKey = errors.New("unknown key")

var namedKeys = map[string]Event{
	"clear":     ClearEvent(),
	"ac":        ClearEvent(),
	"c":         ClearEvent(),
	"del":       DeleteEvent(),
	"delete":    DeleteEvent(),
	"backspace": DeleteEvent(),
	"bs":        DeleteEvent(),
	"⌫":         DeleteEvent(),
	"<":         DeleteEvent(),
	"=":         EqualsEvent(),
	"enter":     EqualsEvent(),
	"equals":    EqualsEvent(),
}

// ParseKey maps a single key name or symbol to its Event.
func ParseKey(key string) (Event, error) {
	if d, ok := calcx.ParseDigit(key); ok {
		return DigitEvent(d), nil
	}
	if op, ok := calcx.ParseOperation(key); ok {
		return OperationEvent(op), nil
	}
	if e, ok := namedKeys[strings.ToLower(key)]; ok {
		return e, nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// ParseKeys splits a line of input into events. Whitespace separates tokens;
// a token that is not a key name is read one character at a time, so "12+3="
// and "1 2 + 3 =" are equivalent.
func ParseKeys(line string) ([]Event, error) {
	var events []Event
	for _, field := range strings.Fields(line) {
		if e, ok := namedKeys[strings.ToLower(field)]; ok {
			events = append(events, e)
			continue
		}
		for _, r := range field {
			e, err := ParseKey(string(r))
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", field, err)
			}
			events = append(events, e)
		}
	}
	return events, nil
}
