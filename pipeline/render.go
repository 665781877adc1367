package pipeline

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/types"
)

// ComputeWidths returns, per output column, the display width of its widest
// label or cell plus padding. Missing cells and labels count as empty.
func ComputeWidths(rows []types.Row, outputCols []types.ColumnRef, headerNames []string) map[types.ColumnRef]int {
	labels := types.Row(headerNames)
	widths := make(map[types.ColumnRef]int, len(outputCols))
	for _, col := range outputCols {
		if _, done := widths[col]; done {
			continue
		}
		width := runewidth.StringWidth(labels.Cell(col))
		for _, row := range rows {
			width = max(width, runewidth.StringWidth(row.Cell(col)))
		}
		widths[col] = width + constants.ColumnPadding
	}
	return widths
}

// Render lays out the table: an optional header and rule line, then one line
// per row, each cell left aligned to its column width.
func Render(headerNames []string, rows []types.Row, outputCols []types.ColumnRef, widths map[types.ColumnRef]int, showHeaders bool) string {
	var out strings.Builder

	if showHeaders {
		writeLine(&out, types.Row(headerNames), outputCols, widths)

		for idx, col := range outputCols {
			if idx > 0 {
				out.WriteString(constants.RuleJoiner)
			}
			out.WriteString(strings.Repeat(constants.RuleChar, widths[col]+2))
		}
		out.WriteByte('\n')
	}

	for _, row := range rows {
		writeLine(&out, row, outputCols, widths)
	}
	return out.String()
}

func writeLine(out *strings.Builder, row types.Row, outputCols []types.ColumnRef, widths map[types.ColumnRef]int) {
	for idx, col := range outputCols {
		if idx > 0 {
			out.WriteString(constants.ColumnJoiner)
		}
		out.WriteString(runewidth.FillRight(row.Cell(col), widths[col]))
	}
	out.WriteByte('\n')
}
