package driven

// Normaliser cleans raw text for the pipeline.
// Implementations must be pure and idempotent.
type Normaliser interface {
	// Normalise replaces every rune that is neither a letter nor
	// whitespace with a single space, lowercases the text and trims
	// surrounding whitespace. The output contains only lowercase
	// letters and whitespace.
	Normalise(text string) string
}
