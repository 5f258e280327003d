package ports

// TableEntry is one row of the type table: a 4-letter code and its
// 8-character function stack (e.g. "INFP" -> "FiNeSiTe").
type TableEntry struct {
	Code  string `yaml:"code"`
	Stack string `yaml:"stack"`
}

// TableSource supplies the rows of a type table in declared order.
// Declared order is significant: it is the tiebreak for search ranking.
type TableSource interface {
	// Entries returns every row. Implementations must not reorder rows.
	Entries() ([]TableEntry, error)
}

// StackValidator checks that a function stack is well formed, i.e. tiled by
// exactly four known function elements. Returns a descriptive error otherwise.
type StackValidator interface {
	Validate(stack string) error
}
