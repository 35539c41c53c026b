package primitives

import (
	"fmt"

	"github.com/comalice/calcx"
)

// EventType names the kind of input.
type EventType string

const (
	EventDigit     EventType = "digit"
	EventDelete    EventType = "delete"
	EventOperation EventType = "operation"
	EventEquals    EventType = "equals"
	EventClear     EventType = "clear"
)

// Event is an immutable input fed to a calculator session.
//
// Events are value types and should not be mutated once created. The
// constructors below keep Data consistent with Type:
//
//	EventDigit     calcx.Digit
//	EventOperation calcx.Operation
//	EventDelete, EventEquals, EventClear: nil
type Event struct {
	Type EventType
	Data any
}

// NewEvent creates and returns a new immutable Event. Prefer the typed
// constructors.
func NewEvent(eventType EventType, data any) Event {
	return Event{
		Type: eventType,
		Data: data,
	}
}

func DigitEvent(d calcx.Digit) Event          { return NewEvent(EventDigit, d) }
func OperationEvent(op calcx.Operation) Event { return NewEvent(EventOperation, op) }
func DeleteEvent() Event                      { return NewEvent(EventDelete, nil) }
func EqualsEvent() Event                      { return NewEvent(EventEquals, nil) }
func ClearEvent() Event                       { return NewEvent(EventClear, nil) }

func (e Event) String() string {
	if e.Data == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %v", e.Type, e.Data)
}
