package pipeline

import (
	"strings"

	"github.com/datazip-inc/tablefilter/types"
)

// Matches evaluates AND across columns and OR across each column's substrings.
// A missing cell reads as "" and a nil spec matches everything.
func Matches(row types.Row, spec types.MatchSpec) bool {
	for col, accepted := range spec {
		if !containsAny(row.Cell(col), accepted) {
			return false
		}
	}
	return true
}

func containsAny(value string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(value, substring) {
			return true
		}
	}
	return false
}

// FilterRows keeps the rows accepted by spec, preserving order
func FilterRows(rows []types.Row, spec types.MatchSpec) []types.Row {
	if len(spec) == 0 {
		return rows
	}

	filtered := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		if Matches(row, spec) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// KeepRow reports whether at least one projected column has a value.
// Blank trailer lines of piped output fail this check.
func KeepRow(row types.Row, outputCols []types.ColumnRef) bool {
	for _, col := range outputCols {
		if row.Cell(col) != "" {
			return true
		}
	}
	return false
}

// DropEmptyProjections removes the rows rejected by KeepRow
func DropEmptyProjections(rows []types.Row, outputCols []types.ColumnRef) []types.Row {
	kept := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		if KeepRow(row, outputCols) {
			kept = append(kept, row)
		}
	}
	return kept
}
