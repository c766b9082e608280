package driven

import "time"

// Call describes one completed core invocation for diagnostics.
type Call struct {
	// ID identifies the invocation (one ID per call).
	ID string

	// Name is the operation name, e.g. "FindAnagrams".
	Name string

	// Args is a human-readable argument summary. Long inputs are
	// truncated by the caller before they reach the tracer.
	Args string

	// Outcome summarises the result, e.g. "2 groups, 5 words".
	Outcome string

	// Err is the call error, nil on success.
	Err error

	// Duration is the wall-clock execution time.
	Duration time.Duration
}

// Tracer records call metadata around core operations.
// Implementations are purely observational and must not alter behaviour.
type Tracer interface {
	// Begin marks the start of a call and returns its invocation ID.
	Begin(name, args string) string

	// End records a completed call.
	End(call Call)
}
