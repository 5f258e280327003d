package app

import (
	"errors"
	"testing"

	"github.com/corey/fstack/internal/adapters/ahocorasick"
	"github.com/corey/fstack/internal/domain/search"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	table, err := LoadTable(stack.ReferenceSource{}, ahocorasick.NewElementScanner())
	require.NoError(t, err)
	return New(table, zap.NewNop())
}

func codes(results []search.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Code
	}
	return out
}

type entriesSource []ports.TableEntry

func (s entriesSource) Entries() ([]ports.TableEntry, error) { return s, nil }

type failingSource struct{ err error }

func (s failingSource) Entries() ([]ports.TableEntry, error) { return nil, s.err }

func TestLoadTable_Reference(t *testing.T) {
	table, err := LoadTable(stack.ReferenceSource{}, ahocorasick.NewElementScanner())
	require.NoError(t, err)
	assert.Equal(t, 16, table.Len())
}

func TestLoadTable_RejectsMalformedStack(t *testing.T) {
	src := entriesSource{{Code: "infp", Stack: "FiNeSiXx"}}
	_, err := LoadTable(src, ahocorasick.NewElementScanner())
	require.Error(t, err)
	assert.ErrorIs(t, err, ahocorasick.ErrMalformedStack)
	assert.Contains(t, err.Error(), "INFP")
}

func TestLoadTable_WithoutValidator(t *testing.T) {
	table, err := LoadTable(entriesSource{{Code: "AAAA", Stack: "XxXxXxXx"}}, nil)
	require.NoError(t, err)
	assert.True(t, table.Contains("aaaa"))
}

func TestLoadTable_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadTable(failingSource{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestLoadTable_TableError(t *testing.T) {
	_, err := LoadTable(entriesSource{{Code: "INF", Stack: "FiNeSiTe"}}, nil)
	assert.ErrorIs(t, err, stack.ErrInvalidTable)
}

func TestNew_NilLogger(t *testing.T) {
	a := New(stack.MustReference(), nil)
	assert.NotPanics(t, func() { a.Lookup("INFP") })
}

func TestLookup(t *testing.T) {
	a := newTestApp(t)

	stk, ok := a.Lookup("INFP")
	assert.True(t, ok)
	assert.Equal(t, "FiNeSiTe", stk)

	stk, ok = a.Lookup("entj")
	assert.True(t, ok)
	assert.Equal(t, "TeNiSeFi", stk)

	_, ok = a.Lookup("ABCD")
	assert.False(t, ok)
}
