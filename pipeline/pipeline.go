// Package pipeline turns buffered delimiter-separated lines into an aligned
// table: headers are parsed, column identifiers resolved, then rows go through
// match filter, transforms, empty-projection filter, sort and result skip
// before widths are computed and the table is rendered.
package pipeline

import (
	"fmt"

	"github.com/datazip-inc/tablefilter/types"
	"github.com/datazip-inc/tablefilter/utils"
	"github.com/datazip-inc/tablefilter/utils/logger"
)

// Plan is the resolved form of Options against one header row
type Plan struct {
	HeaderNames []string
	Headers     types.HeaderTable
	OutputCols  []types.ColumnRef
	Match       types.MatchSpec
	Transforms  types.TransformSpec
	Sort        *types.SortSpec
}

// NewPlan parses the header row and resolves every column identifier in opts
func NewPlan(lines []string, opts *types.Options) (*Plan, error) {
	names, headers, err := ParseHeaders(lines, opts.HeadersRow, opts.Separator)
	if err != nil {
		return nil, err
	}

	plan := &Plan{HeaderNames: names, Headers: headers}
	if plan.OutputCols, err = ResolveAll(opts.Columns, headers); err != nil {
		return nil, err
	}
	if plan.Match, err = ParseMatchSpec(opts.Match, headers); err != nil {
		return nil, err
	}
	if plan.Transforms, err = ParseTransformSpec(opts.Transform, headers); err != nil {
		return nil, err
	}
	if opts.SortBy != "" {
		col, err := Resolve(opts.SortBy, headers)
		if err != nil {
			return nil, err
		}
		plan.Sort = &types.SortSpec{Column: col, Order: types.Ascending}
		if opts.SortOrder == types.Descending {
			plan.Sort.Order = types.Descending
		}
	}
	return plan, nil
}

// Run executes the whole pipeline over lines and returns the rendered table.
// A nil transformer reads the wall clock.
func Run(lines []string, opts *types.Options, transformer *Transformer) (string, error) {
	if transformer == nil {
		transformer = NewTransformer()
	}
	if err := utils.Validate(opts); err != nil {
		return "", fmt.Errorf("invalid options: %s", err)
	}

	plan, err := NewPlan(lines, opts)
	if err != nil {
		return "", err
	}
	logger.Debugf("[pipeline] headers=%v output columns=%v", plan.HeaderNames, plan.OutputCols)

	rows := ParseRows(lines, opts.HeadersRow, opts.SkipLines, opts.Separator)
	logger.Debugf("[pipeline] parsed %d rows", len(rows))

	rows = FilterRows(rows, plan.Match)
	logger.Debugf("[pipeline] %d rows after match filter", len(rows))

	transformer.ApplyAll(rows, plan.Transforms)

	rows = DropEmptyProjections(rows, plan.OutputCols)
	logger.Debugf("[pipeline] %d rows with a value in the output columns", len(rows))

	Sort(rows, plan.Sort)
	rows = SkipResults(rows, opts.SkipResults)

	widths := ComputeWidths(rows, plan.OutputCols, plan.HeaderNames)
	return Render(plan.HeaderNames, rows, plan.OutputCols, widths, opts.ShowHeaders), nil
}
