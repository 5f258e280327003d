// Package stack models function stacks: the 8-character encoding of four
// 2-character cognitive-function elements, the slots those elements occupy,
// and the immutable code -> stack table.
package stack

import "strconv"

// ElementWidth is the number of characters per function element.
const ElementWidth = 2

// Slots is the number of elements (and labeled slots) in a stack.
const Slots = 4

// Slot is a 1-based element position within a stack.
// Values outside 1..4 can arise from SlotRange on spans that run past the
// last element; they are kept and labeled generically ("Slot5").
type Slot int

const (
	Primary Slot = iota + 1
	Secondary
	Tertiary
	Inferior
)

var slotNames = [...]string{
	Primary:   "Primary",
	Secondary: "Secondary",
	Tertiary:  "Tertiary",
	Inferior:  "Inferior",
}

// Valid reports whether s is one of the four labeled slots.
func (s Slot) Valid() bool {
	return s >= Primary && s <= Inferior
}

// String returns the slot's name, or "Slot<n>" for out-of-range slots.
func (s Slot) String() string {
	if s.Valid() {
		return slotNames[s]
	}
	return "Slot" + strconv.Itoa(int(s))
}

// SlotAt returns the slot containing character offset.
func SlotAt(offset int) Slot {
	return Slot(offset/ElementWidth + 1)
}

// Elements splits a stack into its 2-character elements.
// "FiNeSiTe" -> ["Fi", "Ne", "Si", "Te"]. A trailing odd character
// becomes a 1-character element.
func Elements(stack string) []string {
	elems := make([]string, 0, (len(stack)+ElementWidth-1)/ElementWidth)
	for i := 0; i < len(stack); i += ElementWidth {
		end := min(i+ElementWidth, len(stack))
		elems = append(elems, stack[i:end])
	}
	return elems
}

// SlotRange returns every slot touched by a span of length characters
// starting at start, ascending. A span straddling an element boundary
// covers both slots: SlotRange(1, 2) = [Primary, Secondary].
// Non-positive lengths cover nothing.
func SlotRange(start, length int) []Slot {
	if length <= 0 || start < 0 {
		return nil
	}
	first, last := SlotAt(start), SlotAt(start+length-1)
	slots := make([]Slot, 0, last-first+1)
	for s := first; s <= last; s++ {
		slots = append(slots, s)
	}
	return slots
}

// Label renders a slot for display together with the element it holds,
// e.g. "Primary (Fi)". Slots with no element render as the bare name.
func Label(s Slot, elements []string) string {
	i := int(s) - 1
	if i < 0 || i >= len(elements) {
		return s.String()
	}
	return s.String() + " (" + elements[i] + ")"
}
