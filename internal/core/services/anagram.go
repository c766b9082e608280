package services

import (
	"context"
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
	"github.com/custodia-labs/anagram-cli/internal/logger"
)

// Ensure AnagramService implements the interface.
var _ driving.AnagramService = (*AnagramService)(nil)

// AnagramService runs the anagram grouping pipeline.
// It is stateless across calls and safe for concurrent use.
type AnagramService struct {
	normaliser driven.Normaliser
	tokeniser  driven.Tokeniser
}

// NewAnagramService creates a new anagram service.
func NewAnagramService(normaliser driven.Normaliser, tokeniser driven.Tokeniser) *AnagramService {
	return &AnagramService{
		normaliser: normaliser,
		tokeniser:  tokeniser,
	}
}

// FindAnagrams composes normalise -> tokenise -> group over the text.
// The pipeline is total: any input produces a Result, possibly empty,
// and the returned error is always nil. Logging here is observational
// and never influences the result.
func (s *AnagramService) FindAnagrams(
	ctx context.Context, text string, opts domain.FindOptions,
) (domain.Result, error) {
	logger.Section("Anagram Grouping")

	cleaned := s.normaliser.Normalise(text)
	if cleaned == "" {
		logger.Info("Empty input after normalisation, nothing to group")
		return domain.Result{}, nil
	}
	logger.Debug("Cleaned text: %q", truncate(cleaned, 50))

	minLen := opts.EffectiveMinWordLength()
	words := s.tokeniser.Extract(cleaned, minLen)
	logger.Info("Unique words of length >= %d: %d", minLen, len(words))

	result := groupWords(words)

	if result.Empty() {
		logger.Info("No anagram groups found")
	} else {
		logger.Info("Found %d groups, %d words total", len(result.Groups), result.TotalWords())
		for i, g := range result.Groups {
			logger.Debug("Group %d [%s]: %v", i+1, g.Key, g.Words)
		}
	}

	return result, nil
}

// canonicalKey returns the word's runes sorted by code point.
// Two words share a key iff they are letter-permutations of each other.
func canonicalKey(word string) string {
	runes := []rune(word)
	slices.Sort(runes)
	return string(runes)
}

// groupWords buckets words by canonical key, keeps buckets with two or
// more members and orders everything lexicographically. The output is a
// function of the word set only, not of input order.
func groupWords(words []string) domain.Result {
	if len(words) == 0 {
		return domain.Result{}
	}

	buckets := make(map[string][]string)
	order := make([]string, 0, len(words))

	for _, word := range words {
		key := canonicalKey(word)
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], word)
	}

	// A fresh collator per call: collators are not safe for concurrent
	// use, and language.Und keeps ordering content-determined across
	// alphabets.
	col := collate.New(language.Und)

	groups := make([]domain.Group, 0, len(order))
	for _, key := range order {
		members := buckets[key]
		if len(members) < 2 {
			continue
		}
		col.SortStrings(members)
		groups = append(groups, domain.Group{Key: key, Words: members})
	}

	sort.Slice(groups, func(i, j int) bool {
		return col.CompareString(groups[i].First(), groups[j].First()) < 0
	})

	return domain.Result{Groups: groups}
}

// truncate shortens s to at most n runes for log output.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
