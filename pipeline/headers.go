package pipeline

import (
	"fmt"
	"strings"

	"github.com/datazip-inc/tablefilter/types"
	"github.com/datazip-inc/tablefilter/utils"
)

// ParseHeaders splits the 1-based headerRow of lines into upper-cased names
// and builds the name lookup. Duplicate names resolve to their last position.
func ParseHeaders(lines []string, headerRow int, separator string) ([]string, types.HeaderTable, error) {
	if headerRow < 1 || headerRow > len(lines) {
		return nil, nil, fmt.Errorf("%w: row %d of %d input lines", ErrInvalidHeaderRow, headerRow, len(lines))
	}

	names := utils.SplitAndTrim(lines[headerRow-1], separator)
	for idx, name := range names {
		names[idx] = strings.ToUpper(name)
	}
	return names, types.NewHeaderTable(names), nil
}
