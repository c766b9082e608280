// Package text provides the letters+whitespace normaliser.
package text

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser reduces raw text to lowercase letters and whitespace.
// It accepts any Unicode letter, so Latin and Cyrillic inputs are
// handled alike.
type Normaliser struct{}

// New creates a new text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise replaces every rune that is neither a letter nor whitespace
// with a single space, lowercases letters and trims the result.
// Pure and idempotent: Normalise(Normalise(x)) == Normalise(x).
func (n *Normaliser) Normalise(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.TrimSpace(b.String())
}
