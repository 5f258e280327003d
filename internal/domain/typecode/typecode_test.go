package typecode

import (
	"testing"

	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		pattern, code string
		want          bool
	}{
		{"E?T?", "ESTJ", true},
		{"E?T?", "ISTJ", false},
		{"?????", "ESTJ", false},
		{"ESTJ", "ESTJ", true},
		{"estj", "ESTJ", true},
		{"E?t?", "estp", true},
		{"????", "INFP", true},
		{"EN", "ENFP", true},
		{"EN", "ESFP", false},
		{"?N", "INTJ", true},
		{"", "INFP", true},
		{"EN?", "ENTJ", true},
		{"ESTJX", "ESTJ", false},
		{"IN", "I", false},
		{"I?", "I", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Matches(tc.pattern, tc.code), "Matches(%q, %q)", tc.pattern, tc.code)
	}
}

func TestFindAll(t *testing.T) {
	table := stack.MustReference()

	assert.Equal(t, []string{"ENTP", "ENTJ", "ESTP", "ESTJ"}, FindAll(table, "E?T?"))
	assert.Equal(t, []string{"ENFP", "ENFJ", "ENTP", "ENTJ"}, FindAll(table, "en"))
	assert.Len(t, FindAll(table, "????"), 16)
	assert.Len(t, FindAll(table, ""), 16)
	assert.Empty(t, FindAll(table, "?????"))
	assert.Empty(t, FindAll(table, "X"))
}

func TestFlip(t *testing.T) {
	assert.Equal(t, "ESTJ", Flip("INFP"))
	assert.Equal(t, "INFP", Flip("ESTJ"))
	assert.Equal(t, "ESTJ", Flip("infp"))
	assert.Equal(t, "E?TJ", Flip("IXFP"))
	assert.Equal(t, "", Flip(""))
}

func TestFlip_Involution(t *testing.T) {
	letters := []byte("IENSFTPJ")
	// Every 4-letter word over the axis letters, valid code or not.
	for _, a := range letters {
		for _, b := range letters {
			for _, c := range letters {
				for _, d := range letters {
					code := string([]byte{a, b, c, d})
					assert.Equal(t, code, Flip(Flip(code)))
				}
			}
		}
	}
}

func TestFlip_ClosedOverReference(t *testing.T) {
	table := stack.MustReference()
	for code := range table.All() {
		assert.True(t, table.Contains(Flip(code)), "opposite of %s", code)
	}
}

func TestFlip_MayLeaveTable(t *testing.T) {
	table, err := stack.NewTable([]ports.TableEntry{{Code: "INFP", Stack: "FiNeSiTe"}})
	require.NoError(t, err)
	assert.False(t, table.Contains(Flip("INFP")))
}
