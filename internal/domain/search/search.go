// Package search finds which types' function stacks contain a pattern and
// annotates each occurrence with the slots it covers.
package search

import (
	"slices"
	"sort"

	"github.com/corey/fstack/internal/domain/kmp"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/ports"
)

// Match is one occurrence of the pattern inside a stack.
// Start and Length locate the span so callers can highlight it; Slots and
// Labels are parallel.
type Match struct {
	Start  int
	Length int
	Slots  []stack.Slot
	Labels []string // e.g. "Primary (Fi)"
}

// MinSlot returns the lowest slot the match covers, or 0 if it covers none.
func (m Match) MinSlot() stack.Slot {
	if len(m.Slots) == 0 {
		return 0
	}
	return slices.Min(m.Slots)
}

// Covers reports whether the match touches slot s.
func (m Match) Covers(s stack.Slot) bool {
	return slices.Contains(m.Slots, s)
}

// Result groups the matches found in one type's stack.
type Result struct {
	Code    string
	Stack   string
	Matches []Match
}

// MinSlot returns the lowest slot covered by any of the result's matches.
func (r Result) MinSlot() stack.Slot {
	var lowest stack.Slot
	for i, m := range r.Matches {
		if s := m.MinSlot(); i == 0 || s < lowest {
			lowest = s
		}
	}
	return lowest
}

// Service searches every stack of a table.
type Service struct {
	table   *stack.Table
	matcher ports.SubstringMatcher
}

// NewService returns a Service over table using case-insensitive KMP.
func NewService(table *stack.Table) *Service {
	return &Service{table: table, matcher: kmp.Matcher{IgnoreCase: true}}
}

// Table returns the table the service searches.
func (s *Service) Table() *stack.Table { return s.table }

// Search returns every type whose stack contains pattern, case-insensitively.
// Matches within a result and results themselves are ordered by ascending
// lowest covered slot; ties keep offset and table order respectively.
// An empty pattern yields no results.
func (s *Service) Search(pattern string) []Result {
	var results []Result
	for code, stk := range s.table.All() {
		offsets := s.matcher.FindAll(stk, pattern)
		if len(offsets) == 0 {
			continue
		}
		elems := stack.Elements(stk)
		matches := make([]Match, 0, len(offsets))
		for _, start := range offsets {
			matches = append(matches, newMatch(start, len(pattern), elems))
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].MinSlot() < matches[j].MinSlot()
		})
		results = append(results, Result{Code: code, Stack: stk, Matches: matches})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MinSlot() < results[j].MinSlot()
	})
	return results
}

func newMatch(start, length int, elems []string) Match {
	slots := stack.SlotRange(start, length)
	labels := make([]string, len(slots))
	for i, sl := range slots {
		labels[i] = stack.Label(sl, elems)
	}
	return Match{Start: start, Length: length, Slots: slots, Labels: labels}
}
