package search

import (
	"testing"

	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/ports"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferenceService() *Service {
	return NewService(stack.MustReference())
}

func codesOf(results []Result) []string {
	codes := make([]string, len(results))
	for i, r := range results {
		codes[i] = r.Code
	}
	return codes
}

func TestSearch_Fi(t *testing.T) {
	results := newReferenceService().Search("Fi")

	want := []string{"INFP", "ISFP", "ENFP", "ESFP", "INTJ", "ISTJ", "ENTJ", "ESTJ"}
	assert.Equal(t, want, codesOf(results))

	first := results[0]
	assert.Equal(t, "FiNeSiTe", first.Stack)
	require.Len(t, first.Matches, 1)
	assert.Equal(t, Match{
		Start:  0,
		Length: 2,
		Slots:  []stack.Slot{stack.Primary},
		Labels: []string{"Primary (Fi)"},
	}, first.Matches[0])
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := newReferenceService()
	if diff := cmp.Diff(svc.Search("Fi"), svc.Search("fI")); diff != "" {
		t.Errorf("case should not matter (-Fi +fI):\n%s", diff)
	}
}

func TestSearch_StraddlesElements(t *testing.T) {
	results := newReferenceService().Search("eSi")

	assert.Equal(t, []string{"ESFJ", "ESTJ", "INFP", "INTP", "ENFP", "ENTP"}, codesOf(results))

	infp := results[2]
	require.Len(t, infp.Matches, 1)
	m := infp.Matches[0]
	assert.Equal(t, 3, m.Start)
	assert.Equal(t, []stack.Slot{stack.Secondary, stack.Tertiary}, m.Slots)
	assert.Equal(t, []string{"Secondary (Ne)", "Tertiary (Si)"}, m.Labels)
}

func TestSearch_MultipleMatchesPerStack(t *testing.T) {
	results := newReferenceService().Search("e")
	require.Len(t, results, 16)

	// Extraverts put an "e" in slot 1 and rank first.
	assert.Equal(t, "ENFP", results[0].Code)
	assert.Equal(t, "ISTJ", results[15].Code)

	enfp := results[0]
	require.Len(t, enfp.Matches, 2)
	assert.Equal(t, 1, enfp.Matches[0].Start)
	assert.Equal(t, 5, enfp.Matches[1].Start)
	assert.Equal(t, stack.Primary, enfp.MinSlot())
}

func TestSearch_ResultsOrderedByMinSlot(t *testing.T) {
	for _, pattern := range []string{"Fi", "Te", "e", "i", "NiT", "Se"} {
		results := newReferenceService().Search(pattern)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].MinSlot(), results[i].MinSlot(), pattern)
		}
		for _, r := range results {
			for i := 1; i < len(r.Matches); i++ {
				assert.LessOrEqual(t, r.Matches[i-1].MinSlot(), r.Matches[i].MinSlot(), pattern)
			}
		}
	}
}

func TestSearch_MatchesPointAtPattern(t *testing.T) {
	for _, r := range newReferenceService().Search("sIt") {
		for _, m := range r.Matches {
			assert.Equal(t, "SIT", upper(r.Stack[m.Start:m.Start+m.Length]))
		}
	}
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}

func TestSearch_NoMatch(t *testing.T) {
	svc := newReferenceService()
	assert.Empty(t, svc.Search("Xx"))
	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("FiNeSiTeFi"))
}

func TestSearch_WholeStack(t *testing.T) {
	results := newReferenceService().Search("finesite")
	require.Len(t, results, 1)
	assert.Equal(t, "INFP", results[0].Code)
	assert.Equal(t, []stack.Slot{1, 2, 3, 4}, results[0].Matches[0].Slots)
}

func TestSearch_SyntheticTable(t *testing.T) {
	table, err := stack.NewTable([]ports.TableEntry{
		{Code: "AAAA", Stack: "TeTeTeFi"},
		{Code: "BBBB", Stack: "FiTeTeTe"},
		{Code: "CCCC", Stack: "NeNeNeNe"},
	})
	require.NoError(t, err)

	results := NewService(table).Search("fi")
	assert.Equal(t, []string{"BBBB", "AAAA"}, codesOf(results))
	assert.Same(t, table, NewService(table).Table())
}

func TestResult_MinSlotEmpty(t *testing.T) {
	assert.Equal(t, stack.Slot(0), Result{}.MinSlot())
	assert.Equal(t, stack.Slot(0), Match{}.MinSlot())
}
