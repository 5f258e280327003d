package ports

// SubstringMatcher finds every occurrence of a single pattern in a text.
// Offsets are 0-based byte positions of each match start, ascending, and
// overlapping occurrences are all reported ("AAAA"/"AA" -> 0, 1, 2).
//
// An empty pattern matches nowhere. A pattern longer than the text matches
// nowhere. Implementations are pure and safe for concurrent use.
type SubstringMatcher interface {
	FindAll(text, pattern string) []int
}
