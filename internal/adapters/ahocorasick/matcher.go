// Package ahocorasick scans function stacks for the eight cognitive-function
// elements using an Aho-Corasick automaton (petar-dambovaliev/aho-corasick),
// and validates that a stack is tiled by exactly four of them.
package ahocorasick

import (
	"errors"
	"fmt"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/fstack/internal/domain/stack"
)

// ErrMalformedStack is wrapped by every Validate failure.
var ErrMalformedStack = errors.New("malformed function stack")

// Elements is the set of known function elements: a function letter plus
// an introverted (i) or extraverted (e) attitude.
var Elements = []string{"Ni", "Ne", "Si", "Se", "Ti", "Te", "Fi", "Fe"}

// ElementMatch is one element found in a stack, with byte offsets.
type ElementMatch struct {
	Element string
	Start   int // inclusive
	End     int // exclusive
}

// ElementScanner finds known elements in stacks. It is immutable after
// construction and safe for concurrent use.
type ElementScanner struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// NewElementScanner builds a scanner for the given elements.
// With no arguments it uses Elements.
func NewElementScanner(elements ...string) *ElementScanner {
	if len(elements) == 0 {
		elements = Elements
	}
	p := make([]string, len(elements))
	copy(p, elements)

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &ElementScanner{
		automaton: builder.Build(p),
		patterns:  p,
	}
}

// Scan returns every element occurrence in s, including overlapping ones.
// Matching is case-sensitive: "fi" is not an element.
func (s *ElementScanner) Scan(stk string) []ElementMatch {
	iter := s.automaton.IterOverlappingByte([]byte(stk))
	var matches []ElementMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ElementMatch{
			Element: s.patterns[m.Pattern()],
			Start:   m.Start(),
			End:     m.End(),
		})
	}
	return matches
}

// Validate checks that stk is exactly four elements long and that every
// element boundary (offsets 0, 2, 4, 6) starts a known element.
// It implements ports.StackValidator.
func (s *ElementScanner) Validate(stk string) error {
	if len(stk) != stack.StackLength {
		return fmt.Errorf("%w: %q has %d characters, want %d", ErrMalformedStack, stk, len(stk), stack.StackLength)
	}
	tiled := make(map[int]bool, stack.Slots)
	for _, m := range s.Scan(stk) {
		if m.Start%stack.ElementWidth == 0 && m.End-m.Start == stack.ElementWidth {
			tiled[m.Start] = true
		}
	}
	for off := 0; off < stack.StackLength; off += stack.ElementWidth {
		if !tiled[off] {
			return fmt.Errorf("%w: %q has unknown element %q in slot %s",
				ErrMalformedStack, stk, stk[off:off+stack.ElementWidth], stack.SlotAt(off))
		}
	}
	return nil
}

// PatternCount returns the number of elements in the automaton.
func (s *ElementScanner) PatternCount() int {
	return len(s.patterns)
}
