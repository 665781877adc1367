package types

import "strings"

// ColumnRef is a resolved zero-based column index
type ColumnRef int

// HeaderTable maps an upper-cased header name to its column index.
// It is built once from the header row and only read afterwards.
type HeaderTable map[string]ColumnRef

// NewHeaderTable builds the lookup from header names in parse order.
// A duplicate name keeps the index of its last occurrence.
func NewHeaderTable(names []string) HeaderTable {
	table := make(HeaderTable, len(names))
	for idx, name := range names {
		table[strings.ToUpper(name)] = ColumnRef(idx)
	}
	return table
}

// Lookup finds a header by name, ignoring case
func (h HeaderTable) Lookup(name string) (ColumnRef, bool) {
	ref, found := h[strings.ToUpper(name)]
	return ref, found
}

// Row is one parsed input line
type Row []string

// Cell returns the value at col, or "" when the row is narrower than col
func (r Row) Cell(col ColumnRef) string {
	if col < 0 || int(col) >= len(r) {
		return ""
	}
	return r[col]
}

// Has reports whether col is within the row
func (r Row) Has(col ColumnRef) bool {
	return col >= 0 && int(col) < len(r)
}
