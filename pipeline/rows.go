package pipeline

import (
	"github.com/datazip-inc/tablefilter/types"
	"github.com/datazip-inc/tablefilter/utils"
)

// ParseRow splits a line into trimmed cells. The cell count is not checked
// against the header: short rows read as empty in their missing columns.
func ParseRow(line, separator string) types.Row {
	return types.Row(utils.SplitAndTrim(line, separator))
}

// ParseRows parses every data line, skipping the lines up to and including the
// 1-based headerRow plus skipLines more.
func ParseRows(lines []string, headerRow, skipLines int, separator string) []types.Row {
	start := headerRow + skipLines
	if start >= len(lines) {
		return nil
	}

	rows := make([]types.Row, 0, len(lines)-start)
	for _, line := range lines[start:] {
		rows = append(rows, ParseRow(line, separator))
	}
	return rows
}
