package stack

import (
	"strings"
	"testing"

	"github.com/corey/fstack/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElements(t *testing.T) {
	assert.Equal(t, []string{"Fi", "Ne", "Si", "Te"}, Elements("FiNeSiTe"))
	assert.Equal(t, []string{"Fi", "N"}, Elements("FiN"))
	assert.Empty(t, Elements(""))
}

func TestSlotRange(t *testing.T) {
	assert.Equal(t, []Slot{Primary}, SlotRange(0, 2))
	assert.Equal(t, []Slot{Primary, Secondary}, SlotRange(1, 2))
	assert.Equal(t, []Slot{Primary}, SlotRange(1, 1))
	assert.Equal(t, []Slot{Secondary, Tertiary, Inferior}, SlotRange(2, 6))
	assert.Equal(t, []Slot{Primary, Secondary, Tertiary, Inferior}, SlotRange(0, 8))
	assert.Equal(t, []Slot{Inferior}, SlotRange(7, 1))
}

func TestSlotRange_Degenerate(t *testing.T) {
	assert.Nil(t, SlotRange(0, 0))
	assert.Nil(t, SlotRange(3, -1))
	assert.Nil(t, SlotRange(-1, 2))
}

func TestSlotRange_PastLastElement(t *testing.T) {
	// Spans running past the fourth element keep their generic slot.
	slots := SlotRange(6, 4)
	assert.Equal(t, []Slot{Inferior, 5}, slots)
	assert.False(t, slots[1].Valid())
	assert.Equal(t, "Slot5", slots[1].String())
}

func TestSlot_String(t *testing.T) {
	assert.Equal(t, "Primary", Primary.String())
	assert.Equal(t, "Secondary", Secondary.String())
	assert.Equal(t, "Tertiary", Tertiary.String())
	assert.Equal(t, "Inferior", Inferior.String())
	assert.Equal(t, "Slot0", Slot(0).String())
	assert.Equal(t, "Slot-3", Slot(-3).String())
}

func TestSlotAt(t *testing.T) {
	for offset, want := range []Slot{1, 1, 2, 2, 3, 3, 4, 4, 5} {
		assert.Equal(t, want, SlotAt(offset), "offset %d", offset)
	}
}

func TestLabel(t *testing.T) {
	elems := Elements("FiNeSiTe")
	assert.Equal(t, "Primary (Fi)", Label(Primary, elems))
	assert.Equal(t, "Inferior (Te)", Label(Inferior, elems))
	assert.Equal(t, "Slot5", Label(5, elems))
	assert.Equal(t, "Slot0", Label(0, elems))
}

func TestReference_Valid(t *testing.T) {
	table := MustReference()
	assert.Equal(t, 16, table.Len())

	stacks := make(map[string]bool)
	for code, s := range table.All() {
		assert.Len(t, code, CodeLength)
		assert.Len(t, s, StackLength)
		assert.False(t, stacks[s], "stack %s is not unique", s)
		stacks[s] = true
	}
}

func TestTable_Lookup(t *testing.T) {
	table := MustReference()

	s, ok := table.Lookup("INFP")
	assert.True(t, ok)
	assert.Equal(t, "FiNeSiTe", s)

	s, ok = table.Lookup("estj")
	assert.True(t, ok)
	assert.Equal(t, "TeSiNeFi", s)

	_, ok = table.Lookup("XXXX")
	assert.False(t, ok)
	assert.False(t, table.Contains("INF"))
	assert.True(t, table.Contains("enfj"))
}

func TestTable_PreservesOrder(t *testing.T) {
	table := MustReference()
	codes := table.Codes()
	require.Len(t, codes, 16)
	assert.Equal(t, "INFP", codes[0])
	assert.Equal(t, "ESTJ", codes[15])

	entries, err := table.Entries()
	require.NoError(t, err)
	assert.Equal(t, Reference(), entries)
}

func TestTable_EntriesIsACopy(t *testing.T) {
	table := MustReference()
	entries, _ := table.Entries()
	entries[0].Stack = "XxXxXxXx"

	s, _ := table.Lookup("INFP")
	assert.Equal(t, "FiNeSiTe", s)
}

func TestNewTable_NormalizesCodes(t *testing.T) {
	table, err := NewTable([]ports.TableEntry{{Code: " infp ", Stack: "FiNeSiTe"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"INFP"}, table.Codes())
}

func TestNewTable_Rejects(t *testing.T) {
	cases := map[string][]ports.TableEntry{
		"short code":  {{Code: "INF", Stack: "FiNeSiTe"}},
		"long code":   {{Code: "INFPX", Stack: "FiNeSiTe"}},
		"short stack": {{Code: "INFP", Stack: "FiNeSiT"}},
		"long stack":  {{Code: "INFP", Stack: "FiNeSiTeX"}},
		"duplicate":   {{Code: "INFP", Stack: "FiNeSiTe"}, {Code: "infp", Stack: "NiFeTiSe"}},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewTable(entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestNewTable_Empty(t *testing.T) {
	table, err := NewTable(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Codes())
}

func TestReferenceSource(t *testing.T) {
	var src ports.TableSource = ReferenceSource{}
	entries, err := src.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 16)
	for _, e := range entries {
		assert.Equal(t, strings.ToUpper(e.Code), e.Code)
	}
}
