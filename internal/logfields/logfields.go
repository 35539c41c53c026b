package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySessionID = "session_id"
	KeyInput     = "input"
	KeyOperation = "operation"
	KeyOutcome   = "outcome"
	KeyCurrent   = "current"
	KeyPrevious  = "previous"
	KeyQueueSize = "queue_size"
	KeyError     = "error"
)

func SessionID(id string) slog.Attr { return slog.String(KeySessionID, id) }
func Input(in string) slog.Attr     { return slog.String(KeyInput, in) }
func Operation(op string) slog.Attr { return slog.String(KeyOperation, op) }
func Outcome(o string) slog.Attr    { return slog.String(KeyOutcome, o) }
func Current(v string) slog.Attr    { return slog.String(KeyCurrent, v) }
func Previous(v string) slog.Attr   { return slog.String(KeyPrevious, v) }
func QueueSize(n int) slog.Attr     { return slog.Int(KeyQueueSize, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
