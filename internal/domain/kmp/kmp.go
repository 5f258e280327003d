// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// prefix function. Search is O(len(text) + len(pattern)) time and
// O(len(pattern)) extra space, and reports overlapping occurrences.
package kmp

// FailureTable returns the prefix function of pattern: entry i is the length
// of the longest proper prefix of pattern[:i+1] that is also its suffix.
// The empty pattern yields an empty table.
func FailureTable(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			// Fall back without advancing i.
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// Search returns the start offset of every occurrence of pattern in text,
// ascending. Matches may overlap. An empty pattern matches nowhere.
func Search(text, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}
	lps := FailureTable(pattern)

	var matches []int
	i, j := 0, 0 // text cursor, pattern cursor
	for i < len(text) {
		switch {
		case text[i] == pattern[j]:
			i++
			j++
			if j == len(pattern) {
				matches = append(matches, i-j)
				j = lps[j-1]
			}
		case j != 0:
			j = lps[j-1]
		default:
			i++
		}
	}
	return matches
}

// SearchFold is Search with both operands folded to upper case first.
// Only ASCII letters are folded, so offsets stay valid for the original text.
func SearchFold(text, pattern string) []int {
	return Search(upperASCII(text), upperASCII(pattern))
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Matcher adapts the package functions to ports.SubstringMatcher.
type Matcher struct {
	// IgnoreCase selects SearchFold instead of Search.
	IgnoreCase bool
}

// FindAll returns every start offset of pattern in text.
func (m Matcher) FindAll(text, pattern string) []int {
	if m.IgnoreCase {
		return SearchFold(text, pattern)
	}
	return Search(text, pattern)
}
