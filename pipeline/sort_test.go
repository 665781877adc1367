package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datazip-inc/tablefilter/types"
)

func TestSort(t *testing.T) {
	input := func() []types.Row {
		return []types.Row{
			{"b", "first-b"},
			{"a", "first-a"},
			{"c"},
			{"b", "second-b"},
			{"a", "second-a"},
		}
	}

	t.Run("nil spec keeps order", func(t *testing.T) {
		rows := input()
		Sort(rows, nil)
		assert.Equal(t, input(), rows)
	})

	t.Run("ascending is stable", func(t *testing.T) {
		rows := input()
		Sort(rows, &types.SortSpec{Column: 0, Order: types.Ascending})
		assert.Equal(t, []types.Row{
			{"a", "first-a"},
			{"a", "second-a"},
			{"b", "first-b"},
			{"b", "second-b"},
			{"c"},
		}, rows)
	})

	t.Run("descending is stable", func(t *testing.T) {
		rows := input()
		Sort(rows, &types.SortSpec{Column: 0, Order: types.Descending})
		assert.Equal(t, []types.Row{
			{"c"},
			{"b", "first-b"},
			{"b", "second-b"},
			{"a", "first-a"},
			{"a", "second-a"},
		}, rows)
	})

	t.Run("missing cells sort as empty", func(t *testing.T) {
		rows := input()
		Sort(rows, &types.SortSpec{Column: 1, Order: types.Ascending})
		assert.Equal(t, types.Row{"c"}, rows[0])
	})

	t.Run("byte order", func(t *testing.T) {
		rows := []types.Row{{"b"}, {"B"}, {"10"}, {"9"}, {"é"}}
		Sort(rows, &types.SortSpec{Column: 0, Order: types.Ascending})
		assert.Equal(t, []types.Row{{"10"}, {"9"}, {"B"}, {"b"}, {"é"}}, rows)
	})
}

func TestSkipResults(t *testing.T) {
	rows := []types.Row{{"1"}, {"2"}, {"3"}}

	assert.Equal(t, rows, SkipResults(rows, 0))
	assert.Equal(t, []types.Row{{"3"}}, SkipResults(rows, 2))
	assert.Empty(t, SkipResults(rows, 3))
	assert.Empty(t, SkipResults(rows, 10))
}
