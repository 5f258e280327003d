package search

import (
	"slices"

	"github.com/corey/fstack/internal/domain/stack"
)

// FilterBySlot keeps only matches covering slot and drops results left
// without matches. Surviving results keep their relative order; the input
// is not modified.
func FilterBySlot(results []Result, slot stack.Slot) []Result {
	var out []Result
	for _, r := range results {
		var kept []Match
		for _, m := range r.Matches {
			if m.Covers(slot) {
				kept = append(kept, m)
			}
		}
		if len(kept) == 0 {
			continue
		}
		r.Matches = kept
		out = append(out, r)
	}
	return out
}

// FilterCodes keeps only results whose code is in codes, preserving order.
// Codes are compared exactly; table codes are always upper case.
func FilterCodes(results []Result, codes []string) []Result {
	var out []Result
	for _, r := range results {
		if slices.Contains(codes, r.Code) {
			out = append(out, r)
		}
	}
	return out
}
