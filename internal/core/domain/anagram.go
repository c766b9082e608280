package domain

// Group is one anagram class: two or more distinct words sharing a
// canonical key. Words are sorted lexicographically and the group is
// immutable once produced.
type Group struct {
	// Key is the canonical sorted-rune key shared by all members.
	Key string

	// Words are the members of the class, sorted ascending.
	Words []string
}

// Size returns the number of words in the group.
func (g Group) Size() int {
	return len(g.Words)
}

// First returns the lexicographically smallest member, or "" for an
// empty group. Result ordering is defined in terms of this word.
func (g Group) First() string {
	if len(g.Words) == 0 {
		return ""
	}
	return g.Words[0]
}

// Result is the outcome of one pipeline invocation: anagram groups
// ordered by each group's first member.
type Result struct {
	// Groups are the anagram classes found, in output order.
	Groups []Group
}

// Empty reports whether no groups were found.
func (r Result) Empty() bool {
	return len(r.Groups) == 0
}

// TotalWords returns the number of words across all groups.
func (r Result) TotalWords() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Words)
	}
	return n
}

// Lists returns the bare list-of-lists view of the result, for callers
// that do not care about canonical keys.
func (r Result) Lists() [][]string {
	lists := make([][]string, 0, len(r.Groups))
	for _, g := range r.Groups {
		words := make([]string, len(g.Words))
		copy(words, g.Words)
		lists = append(lists, words)
	}
	return lists
}
