package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/tablefilter/types"
)

func baseOptions() *types.Options {
	return &types.Options{
		HeadersRow:  1,
		Columns:     []string{"ID", "NAME"},
		Separator:   "|",
		SortOrder:   types.Ascending,
		ShowHeaders: true,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	lines := []string{"ID|NAME", "1|alice", "2|"}

	t.Run("all rows", func(t *testing.T) {
		out, err := Run(lines, baseOptions(), nil)
		require.NoError(t, err)
		expected := "" +
			"ID    |  NAME   \n" +
			"------+---------\n" +
			"1     |  alice  \n" +
			"2     |         \n"
		assert.Equal(t, expected, out)
	})

	t.Run("match keeps only alice", func(t *testing.T) {
		opts := baseOptions()
		opts.Match = `{"NAME":["a"]}`
		out, err := Run(lines, opts, nil)
		require.NoError(t, err)
		expected := "" +
			"ID    |  NAME   \n" +
			"------+---------\n" +
			"1     |  alice  \n"
		assert.Equal(t, expected, out)
	})

	t.Run("no headers", func(t *testing.T) {
		opts := baseOptions()
		opts.ShowHeaders = false
		out, err := Run(lines, opts, nil)
		require.NoError(t, err)
		assert.Equal(t, "1     |  alice  \n2     |         \n", out)
	})
}

func TestRun_PipedTable(t *testing.T) {
	lines := []string{
		"NAME        │ STATUS   │ AGE",
		"────────────┼──────────┼─────",
		"web-1       │ Running  │ 3d",
		"api-2       │ Pending  │ 12 days",
		"Web-3       │ Running  │ 1d",
		"            │          │",
	}

	opts := &types.Options{
		HeadersRow:  1,
		SkipLines:   1,
		Columns:     []string{"name", "$3"},
		Separator:   "│",
		Match:       `{"STATUS": ["Run", "Crash"]}`,
		Transform:   `{"NAME": "$TO_LOWER", "AGE": ["$AGE_TO_DATE"]}`,
		SortBy:      "AGE",
		SortOrder:   types.Descending,
		ShowHeaders: true,
	}

	out, err := Run(lines, opts, NewTransformer().WithClock(fixedClock))
	require.NoError(t, err)
	expected := "" +
		"NAME     |  AGE                  \n" +
		"---------+-----------------------\n" +
		"web-3    |  2025-03-09 08:30:15  \n" +
		"web-1    |  2025-03-07 08:30:15  \n"
	assert.Equal(t, expected, out)
}

func TestRun_EmptyProjectionUsesTransformedValues(t *testing.T) {
	lines := []string{"ID|NOTE", "1|keep", "|hidden"}
	opts := baseOptions()
	opts.Columns = []string{"ID"}

	out, err := Run(lines, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "ID  \n------\n1   \n", out)
}

func TestRun_SkipResultsAfterSort(t *testing.T) {
	lines := []string{"ID|NAME", "3|c", "1|a", "2|b"}
	opts := baseOptions()
	opts.SortBy = "ID"
	opts.SkipResults = 1
	opts.ShowHeaders = false

	out, err := Run(lines, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "2     |  b     \n3     |  c     \n", out)
}

func TestRun_Errors(t *testing.T) {
	lines := []string{"ID|NAME", "1|alice"}

	tests := []struct {
		name      string
		mutate    func(*types.Options)
		expectErr error
	}{
		{"header row out of range", func(o *types.Options) { o.HeadersRow = 3 }, ErrInvalidHeaderRow},
		{"header row zero", func(o *types.Options) { o.HeadersRow = 0 }, ErrInvalidHeaderRow},
		{"unknown output column", func(o *types.Options) { o.Columns = []string{"AGE"} }, ErrColumnNotFound},
		{"bad positional", func(o *types.Options) { o.Columns = []string{"$0"} }, ErrInvalidColumnNumber},
		{"unknown sort column", func(o *types.Options) { o.SortBy = "AGE" }, ErrColumnNotFound},
		{"invalid match json", func(o *types.Options) { o.Match = "{" }, ErrInvalidJSON},
		{"malformed match", func(o *types.Options) { o.Match = `{"ID": 1}` }, ErrMalformedMatchSpec},
		{"malformed transform", func(o *types.Options) { o.Transform = `[]` }, ErrMalformedTransformSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			tt.mutate(opts)
			_, err := Run(lines, opts, nil)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	opts := baseOptions()
	opts.Columns = nil
	_, err := Run([]string{"ID"}, opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cols")

	opts = baseOptions()
	opts.SortOrder = "sideways"
	_, err = Run([]string{"ID"}, opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort-order")
}
