package whitespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokeniser_Extract(t *testing.T) {
	tok := New()

	words := tok.Extract("cat tac dog", 2)

	assert.Equal(t, []string{"cat", "tac", "dog"}, words)
}

func TestTokeniser_Extract_Empty(t *testing.T) {
	tok := New()

	assert.Empty(t, tok.Extract("", 2))
	assert.Empty(t, tok.Extract("   \t\n  ", 2))
}

func TestTokeniser_Extract_DropsShortWords(t *testing.T) {
	tok := New()

	words := tok.Extract("a b c cat", 2)

	assert.Equal(t, []string{"cat"}, words)
}

func TestTokeniser_Extract_LengthCountedInRunes(t *testing.T) {
	tok := New()

	// Cyrillic letters are two bytes each; "ёж" must survive minLen 2.
	words := tok.Extract("ёж я кот", 2)

	assert.Equal(t, []string{"ёж", "кот"}, words)
}

func TestTokeniser_Extract_DeduplicatesFirstSeen(t *testing.T) {
	tok := New()

	words := tok.Extract("cat tac cat dog tac", 2)

	assert.Equal(t, []string{"cat", "tac", "dog"}, words)
}

func TestTokeniser_Extract_CollapsesWhitespaceRuns(t *testing.T) {
	tok := New()

	words := tok.Extract("cat   tac\t\tdog\n\nrat", 2)

	assert.Equal(t, []string{"cat", "tac", "dog", "rat"}, words)
}

func TestTokeniser_Extract_HigherMinimum(t *testing.T) {
	tok := New()

	words := tok.Extract("ab abc abcd", 4)

	assert.Equal(t, []string{"abcd"}, words)
}
