// Package trace provides a Tracer that reports call metadata through
// the application logger.
package trace

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
	"github.com/custodia-labs/anagram-cli/internal/logger"
)

// Ensure Logger implements the interface.
var _ driven.Tracer = (*Logger)(nil)

// Logger records call starts at debug level and call completions at
// info level (warn on error), tagged with a per-invocation UUID.
type Logger struct{}

// New creates a new logging tracer.
func New() *Logger {
	return &Logger{}
}

// Begin logs the start of a call and returns its invocation ID.
func (t *Logger) Begin(name, args string) string {
	id := uuid.New().String()
	logger.Debug("call %s %s: begin, %s", shortID(id), name, args)
	return id
}

// End logs a completed call with its duration and outcome.
func (t *Logger) End(call driven.Call) {
	if call.Err != nil {
		logger.Warn("call %s %s: failed after %s: %v",
			shortID(call.ID), call.Name, call.Duration, call.Err)
		return
	}
	logger.Info("call %s %s: %s in %s",
		shortID(call.ID), call.Name, call.Outcome, call.Duration)
}

// shortID keeps log lines readable; the first UUID block is unique
// enough for correlating one session's calls.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
