package driving

import (
	"context"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// AnagramService provides anagram grouping to external actors.
type AnagramService interface {
	// FindAnagrams runs the normalise -> tokenise -> group pipeline over
	// the given text. The pipeline is total: empty or whitespace-only
	// input yields an empty Result with a nil error rather than failing.
	FindAnagrams(ctx context.Context, text string, opts domain.FindOptions) (domain.Result, error)
}
