// Package typecode implements operations on 4-letter type codes:
// "?"-wildcard matching and the opposite (letter-flip) transform.
package typecode

import (
	"github.com/corey/fstack/internal/domain/stack"
)

// Wildcard matches any single character in a pattern.
const Wildcard = '?'

// Matches reports whether code matches pattern position by position,
// ignoring ASCII case. "?" accepts any character; positions past the end of
// the pattern are unconstrained, so "EN" matches every code starting "EN".
// Patterns longer than a code (4 letters) never match.
func Matches(pattern, code string) bool {
	if len(pattern) > stack.CodeLength {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		pc := upper(pattern[i])
		if pc == Wildcard {
			continue
		}
		if i >= len(code) || pc != upper(code[i]) {
			return false
		}
	}
	return true
}

// FindAll returns the table's codes matching pattern, in table order.
func FindAll(table *stack.Table, pattern string) []string {
	var codes []string
	for code := range table.All() {
		if Matches(pattern, code) {
			codes = append(codes, code)
		}
	}
	return codes
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
