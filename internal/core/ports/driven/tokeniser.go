package driven

// Tokeniser splits cleaned text into candidate words.
type Tokeniser interface {
	// Extract splits on whitespace runs, drops tokens shorter than
	// minLen runes and deduplicates exact matches, keeping the position
	// of each token's first occurrence.
	Extract(cleaned string, minLen int) []string
}
