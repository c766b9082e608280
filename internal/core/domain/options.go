package domain

// DefaultMinWordLength is the shortest token the pipeline keeps.
// Single-letter words cannot form meaningful anagram pairs.
const DefaultMinWordLength = 2

// FindOptions configures one pipeline invocation.
type FindOptions struct {
	// MinWordLength is the minimum token length in runes.
	// Values below DefaultMinWordLength fall back to the default.
	MinWordLength int
}

// EffectiveMinWordLength resolves the minimum word length, applying
// the default for zero or out-of-range values.
func (o FindOptions) EffectiveMinWordLength() int {
	if o.MinWordLength < DefaultMinWordLength {
		return DefaultMinWordLength
	}
	return o.MinWordLength
}
