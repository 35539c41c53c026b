package metrics

// OutcomeLabel classifies how an input affected the state.
type OutcomeLabel string

const (
	OutcomeApplied OutcomeLabel = "applied"
	OutcomeIgnored OutcomeLabel = "ignored"
)

// Recorder defines observability hooks for calculator sessions.
type Recorder interface {
	// IncInput counts one processed input of the given kind.
	IncInput(kind string, outcome OutcomeLabel)
	// IncEvaluation counts one evaluation of a pending expression.
	IncEvaluation(computed bool)
	// SetQueueDepth reports the number of inputs waiting to be processed.
	SetQueueDepth(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncInput(string, OutcomeLabel) {}
func (NoopRecorder) IncEvaluation(bool)            {}
func (NoopRecorder) SetQueueDepth(int)             {}
