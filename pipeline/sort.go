package pipeline

import (
	"slices"
	"strings"

	"github.com/datazip-inc/tablefilter/types"
)

// Sort orders rows in place by the byte order of one column. Rows with equal
// keys keep their input order in both directions. A nil spec leaves rows as is.
func Sort(rows []types.Row, spec *types.SortSpec) {
	if spec == nil {
		return
	}

	descending := spec.Order == types.Descending
	slices.SortStableFunc(rows, func(a, b types.Row) int {
		cmp := strings.Compare(a.Cell(spec.Column), b.Cell(spec.Column))
		if descending {
			return -cmp
		}
		return cmp
	})
}

// SkipResults drops the first count rows
func SkipResults(rows []types.Row, count int) []types.Row {
	if count <= 0 {
		return rows
	}
	if count >= len(rows) {
		return []types.Row{}
	}
	return rows[count:]
}
