package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
)

// Ensure TracedAnagramService implements the interface.
var _ driving.AnagramService = (*TracedAnagramService)(nil)

// argSummaryLimit caps the argument summary length in runes.
const argSummaryLimit = 50

// TracedAnagramService decorates an AnagramService with call tracing.
// The wrapped service stays free of instrumentation concerns; with a
// nil tracer the decorator is a plain passthrough.
type TracedAnagramService struct {
	inner  driving.AnagramService
	tracer driven.Tracer
}

// NewTracedAnagramService wraps inner with the given tracer.
// The tracer parameter is optional (can be nil).
func NewTracedAnagramService(inner driving.AnagramService, tracer driven.Tracer) *TracedAnagramService {
	return &TracedAnagramService{
		inner:  inner,
		tracer: tracer,
	}
}

// FindAnagrams delegates to the wrapped service, reporting argument,
// timing and outcome metadata to the tracer.
func (s *TracedAnagramService) FindAnagrams(
	ctx context.Context, text string, opts domain.FindOptions,
) (domain.Result, error) {
	if s.tracer == nil {
		return s.inner.FindAnagrams(ctx, text, opts)
	}

	args := summariseArgs(text)
	id := s.tracer.Begin("FindAnagrams", args)

	start := time.Now()
	result, err := s.inner.FindAnagrams(ctx, text, opts)

	s.tracer.End(driven.Call{
		ID:       id,
		Name:     "FindAnagrams",
		Args:     args,
		Outcome:  summariseResult(result),
		Err:      err,
		Duration: time.Since(start),
	})

	return result, err
}

// summariseArgs renders the input text for diagnostics, truncated so
// large inputs do not flood the log.
func summariseArgs(text string) string {
	return fmt.Sprintf("text=%q", truncate(text, argSummaryLimit))
}

// summariseResult renders the result shape rather than its content.
func summariseResult(r domain.Result) string {
	if r.Empty() {
		return "no groups"
	}
	return fmt.Sprintf("%d groups, %d words", len(r.Groups), r.TotalWords())
}
