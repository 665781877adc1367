package pipeline

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/tablefilter/types"
)

func TestResolve(t *testing.T) {
	headers := types.NewHeaderTable([]string{"ID", "NAME", "STATUS"})

	tests := []struct {
		name       string
		identifier string
		expected   types.ColumnRef
		expectErr  error
	}{
		{"first positional", "$1", 0, nil},
		{"third positional", "$3", 2, nil},
		{"positional beyond headers", "$10", 9, nil},
		{"quoted positional", `"$2"`, 1, nil},
		{"name upper", "ID", 0, nil},
		{"name lower", "id", 0, nil},
		{"name mixed", "Id", 0, nil},
		{"quoted name", `"status"`, 2, nil},
		{"name with spaces", "  name ", 1, nil},
		{"zero positional", "$0", 0, ErrInvalidColumnNumber},
		{"negative positional", "$-1", 0, ErrInvalidColumnNumber},
		{"non numeric positional", "$abc", 0, ErrInvalidColumnNumber},
		{"empty positional", "$", 0, ErrInvalidColumnNumber},
		{"unknown name", "AGE", 0, ErrColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Resolve(tt.identifier, headers)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestResolve_NotFoundCarriesName(t *testing.T) {
	_, err := Resolve("missing", types.NewHeaderTable([]string{"ID"}))
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestResolve_PositionalMatchesIndex(t *testing.T) {
	headers := types.NewHeaderTable(nil)
	for n := 1; n <= 50; n++ {
		ref, err := Resolve("$"+strconv.Itoa(n), headers)
		require.NoError(t, err)
		assert.Equal(t, types.ColumnRef(n-1), ref)
	}
}

func TestResolveAll_KeepsOrderAndDuplicates(t *testing.T) {
	headers := types.NewHeaderTable([]string{"ID", "NAME"})

	refs, err := ResolveAll([]string{"NAME", "ID", "name", "$1"}, headers)
	require.NoError(t, err)
	assert.Equal(t, []types.ColumnRef{1, 0, 1, 0}, refs)

	_, err = ResolveAll([]string{"ID", "AGE"}, headers)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}
