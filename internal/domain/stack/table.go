package stack

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/corey/fstack/internal/ports"
)

// CodeLength is the number of letters in a type code.
const CodeLength = 4

// StackLength is the number of characters in a function stack.
const StackLength = Slots * ElementWidth

// ErrInvalidTable is wrapped by every NewTable validation failure.
var ErrInvalidTable = errors.New("invalid type table")

// Table is an immutable, ordered code -> stack mapping.
// Construct it once and share it; nothing mutates it after NewTable.
type Table struct {
	entries []ports.TableEntry
	byCode  map[string]string
}

// NewTable validates entries and builds a table preserving their order.
// Codes are normalized to upper case; stacks are stored as given.
func NewTable(entries []ports.TableEntry) (*Table, error) {
	t := &Table{
		entries: make([]ports.TableEntry, 0, len(entries)),
		byCode:  make(map[string]string, len(entries)),
	}
	for i, e := range entries {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if len(code) != CodeLength {
			return nil, fmt.Errorf("%w: entry %d: code %q must have %d letters", ErrInvalidTable, i, e.Code, CodeLength)
		}
		if len(e.Stack) != StackLength {
			return nil, fmt.Errorf("%w: entry %d (%s): stack %q must have %d characters", ErrInvalidTable, i, code, e.Stack, StackLength)
		}
		if _, dup := t.byCode[code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidTable, code)
		}
		t.byCode[code] = e.Stack
		t.entries = append(t.entries, ports.TableEntry{Code: code, Stack: e.Stack})
	}
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the rows in declared order.
// It also makes *Table a ports.TableSource.
func (t *Table) Entries() ([]ports.TableEntry, error) {
	out := make([]ports.TableEntry, len(t.entries))
	copy(out, t.entries)
	return out, nil
}

// Codes returns the codes in declared order.
func (t *Table) Codes() []string {
	codes := make([]string, len(t.entries))
	for i, e := range t.entries {
		codes[i] = e.Code
	}
	return codes
}

// Lookup returns the stack stored for code. Matching is case-insensitive.
func (t *Table) Lookup(code string) (string, bool) {
	s, ok := t.byCode[strings.ToUpper(code)]
	return s, ok
}

// Contains reports whether code is in the table.
func (t *Table) Contains(code string) bool {
	_, ok := t.Lookup(code)
	return ok
}

// All iterates over code, stack pairs in declared order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range t.entries {
			if !yield(e.Code, e.Stack) {
				return
			}
		}
	}
}
