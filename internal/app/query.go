package app

import (
	"strings"

	"go.uber.org/zap"

	"github.com/corey/fstack/internal/domain/search"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/domain/typecode"
)

// Query combines the optional filters of a cascaded search. Zero values
// mean "not given".
type Query struct {
	Wildcard string     // "?"-pattern over codes, e.g. "E?T?"
	Function string     // substring searched in stacks, e.g. "Fi"
	Slot     stack.Slot // keep only matches covering this slot
}

// Outcome is the result of a cascaded Query.
type Outcome struct {
	// Candidates holds the codes matching Query.Wildcard, in table order.
	// It is nil when no wildcard was given.
	Candidates []string
	// Results holds the function search results after wildcard and slot
	// narrowing. It is nil when no function was given.
	Results []search.Result
	// SlotIgnored is set when a slot was given without a function search.
	SlotIgnored bool
}

// Found reports whether the query produced anything to show.
func (o Outcome) Found(q Query) bool {
	if q.Function != "" {
		return len(o.Results) > 0
	}
	return len(o.Candidates) > 0
}

// Query narrows in stages: the wildcard selects candidate codes, the
// function search runs over the whole table and is restricted to those
// candidates, then the slot filter drops matches outside the slot.
func (a *App) Query(q Query) (Outcome, error) {
	if q.Slot != 0 && !q.Slot.Valid() {
		return Outcome{}, ErrInvalidSlot
	}

	var out Outcome
	if q.Wildcard != "" {
		out.Candidates = typecode.FindAll(a.table, q.Wildcard)
		a.logger.Debug("wildcard",
			zap.String("pattern", q.Wildcard),
			zap.Strings("codes", out.Candidates))
	}

	if q.Function == "" {
		out.SlotIgnored = q.Slot != 0
		return out, nil
	}

	results := a.Search(q.Function)
	if q.Wildcard != "" {
		results = search.FilterCodes(results, out.Candidates)
	}
	if q.Slot != 0 {
		results = search.FilterBySlot(results, q.Slot)
	}
	out.Results = results
	return out, nil
}

// Opposite describes a code and its flipped counterpart.
type Opposite struct {
	Code  string
	Stack string

	Flipped      string
	FlippedStack string // empty when FlippedKnown is false
	FlippedKnown bool   // the flipped code is in the table
}

// Opposite flips code. It returns false when code itself is not in the
// table. A flipped code missing from the table is reported through
// FlippedKnown, not as a failure.
func (a *App) Opposite(code string) (Opposite, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	stk, ok := a.table.Lookup(code)
	if !ok {
		a.logger.Debug("opposite: unknown code", zap.String("code", code))
		return Opposite{}, false
	}
	flipped := typecode.Flip(code)
	flippedStack, known := a.table.Lookup(flipped)
	if !known {
		a.logger.Warn("opposite not in table",
			zap.String("code", code),
			zap.String("flipped", flipped))
	}
	return Opposite{
		Code:         code,
		Stack:        stk,
		Flipped:      flipped,
		FlippedStack: flippedStack,
		FlippedKnown: known,
	}, true
}

// Resolution is the outcome of the single-argument mode.
type Resolution struct {
	Input   string
	Code    string // set when Input named a code
	Stack   string
	Results []search.Result // set when Input was searched as a function
}

// IsCode reports whether the input was a known code.
func (r Resolution) IsCode() bool { return r.Code != "" }

// Found reports whether the input resolved to anything.
func (r Resolution) Found() bool { return r.IsCode() || len(r.Results) > 0 }

// Resolve interprets a single free argument: a known code is looked up
// directly, anything else is searched as a function pattern.
func (a *App) Resolve(input string) Resolution {
	res := Resolution{Input: input}
	code := strings.ToUpper(strings.TrimSpace(input))
	if stk, ok := a.table.Lookup(code); ok {
		res.Code, res.Stack = code, stk
		return res
	}
	res.Results = a.Search(input)
	return res
}
