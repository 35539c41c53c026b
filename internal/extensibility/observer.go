package extensibility

import (
	"log/slog"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/logfields"
)

// LoggingObserver wraps an observer and logs every state it receives at
// debug level before delegating. A nil inner observer only logs.
func LoggingObserver(logger *slog.Logger, inner calcx.Observer) calcx.Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return func(s calcx.State) {
		logger.Debug("state changed",
			logfields.Current(s.CurrentOperand),
			logfields.Previous(s.PreviousOperand),
			logfields.Operation(s.Operation.Name()),
			slog.Bool("overwrite", s.Overwrite))
		if inner != nil {
			inner(s)
		}
	}
}
