// Package whitespace provides the whitespace tokeniser with
// first-seen deduplication.
package whitespace

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
)

// Ensure Tokeniser implements the interface.
var _ driven.Tokeniser = (*Tokeniser)(nil)

// Tokeniser splits cleaned text into unique candidate words.
type Tokeniser struct{}

// New creates a new whitespace tokeniser.
func New() *Tokeniser {
	return &Tokeniser{}
}

// Extract splits on whitespace runs, drops tokens shorter than minLen
// runes and removes duplicates. The first occurrence of a token
// determines its position in the output.
func (t *Tokeniser) Extract(cleaned string, minLen int) []string {
	raw := strings.Fields(cleaned)
	if len(raw) == 0 {
		return []string{}
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, word := range raw {
		// Length is counted in runes, not bytes: "ёж" is two letters.
		if utf8.RuneCountInString(word) < minLen {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}

	return out
}
