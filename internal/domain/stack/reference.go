package stack

import "github.com/corey/fstack/internal/ports"

// reference is the built-in table of the sixteen types.
var reference = []ports.TableEntry{
	{Code: "INFP", Stack: "FiNeSiTe"},
	{Code: "INFJ", Stack: "NiFeTiSe"},
	{Code: "INTP", Stack: "TiNeSiFe"},
	{Code: "INTJ", Stack: "NiTeFiSe"},
	{Code: "ISFP", Stack: "FiSeNiTe"},
	{Code: "ISFJ", Stack: "SiFeTiNe"},
	{Code: "ISTP", Stack: "TiSeNiFe"},
	{Code: "ISTJ", Stack: "SiTeFiNe"},
	{Code: "ENFP", Stack: "NeFiTeSi"},
	{Code: "ENFJ", Stack: "FeNiSeTi"},
	{Code: "ENTP", Stack: "NeTiFeSi"},
	{Code: "ENTJ", Stack: "TeNiSeFi"},
	{Code: "ESFP", Stack: "SeFiTeNi"},
	{Code: "ESFJ", Stack: "FeSiNeTi"},
	{Code: "ESTP", Stack: "SeTiFeNi"},
	{Code: "ESTJ", Stack: "TeSiNeFi"},
}

// Reference returns a copy of the built-in rows in declared order.
func Reference() []ports.TableEntry {
	out := make([]ports.TableEntry, len(reference))
	copy(out, reference)
	return out
}

// ReferenceSource serves the built-in rows as a ports.TableSource.
type ReferenceSource struct{}

// Entries implements ports.TableSource.
func (ReferenceSource) Entries() ([]ports.TableEntry, error) {
	return Reference(), nil
}

// MustReference builds the built-in table. It panics only if the built-in
// rows are malformed, which the package tests rule out.
func MustReference() *Table {
	t, err := NewTable(reference)
	if err != nil {
		panic(err)
	}
	return t
}
