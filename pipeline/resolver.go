package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/types"
)

// Resolve maps a column identifier to its zero-based index. The identifier is
// either a 1-based positional literal such as `$3` or a header name, both
// optionally wrapped in double quotes.
func Resolve(identifier string, headers types.HeaderTable) (types.ColumnRef, error) {
	trimmed := strings.TrimSpace(unquote(identifier))

	if number, isLiteral := strings.CutPrefix(trimmed, constants.ColumnNumberPrefix); isLiteral {
		position, err := strconv.Atoi(number)
		if err != nil || position < 1 {
			return 0, fmt.Errorf("%w: '%s'", ErrInvalidColumnNumber, trimmed)
		}
		return types.ColumnRef(position - 1), nil
	}

	ref, found := headers.Lookup(trimmed)
	if !found {
		return 0, fmt.Errorf("%w: '%s'", ErrColumnNotFound, trimmed)
	}
	return ref, nil
}

// ResolveAll resolves identifiers in order, keeping duplicates
func ResolveAll(identifiers []string, headers types.HeaderTable) ([]types.ColumnRef, error) {
	refs := make([]types.ColumnRef, 0, len(identifiers))
	for _, identifier := range identifiers {
		ref, err := Resolve(identifier, headers)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// unquote strips one layer of surrounding double quotes
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
