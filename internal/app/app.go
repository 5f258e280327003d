// Package app wires the type table, the search service and the typecode
// operations together and implements the query modes of the CLI:
// direct lookup, cascaded search (wildcard, function, slot), opposite and
// the single-argument legacy mode.
package app

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/corey/fstack/internal/domain/search"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/ports"
)

// ErrInvalidSlot is returned by Query for a slot outside 1..4.
var ErrInvalidSlot = errors.New("slot must be between 1 and 4")

// App is the top-level container. It holds only immutable state and may be
// shared freely.
type App struct {
	table  *stack.Table
	search *search.Service
	logger *zap.Logger
}

// New creates an App over table. A nil logger is replaced by a no-op logger.
func New(table *stack.Table, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		table:  table,
		search: search.NewService(table),
		logger: logger,
	}
}

// LoadTable reads entries from src, checks every stack with v (when non-nil)
// and builds the table.
func LoadTable(src ports.TableSource, v ports.StackValidator) (*stack.Table, error) {
	entries, err := src.Entries()
	if err != nil {
		return nil, err
	}
	if v != nil {
		for _, e := range entries {
			if err := v.Validate(e.Stack); err != nil {
				return nil, fmt.Errorf("type %s: %w", strings.ToUpper(e.Code), err)
			}
		}
	}
	return stack.NewTable(entries)
}

// Table returns the table the app serves.
func (a *App) Table() *stack.Table { return a.table }

// Lookup returns the stack stored for code, case-insensitively.
func (a *App) Lookup(code string) (string, bool) {
	stk, ok := a.table.Lookup(code)
	a.logger.Debug("lookup", zap.String("code", code), zap.Bool("found", ok))
	return stk, ok
}

// Search runs a function search without further filtering.
func (a *App) Search(pattern string) []search.Result {
	results := a.search.Search(pattern)
	a.logger.Debug("search",
		zap.String("pattern", pattern),
		zap.Int("results", len(results)))
	return results
}
