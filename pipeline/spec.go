package pipeline

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/datazip-inc/tablefilter/types"
)

// ParseMatchSpec decodes a match argument such as {"NAME": ["a", "b"], "$1": "5"}.
// An empty argument yields a nil spec, which matches every row. A column given
// an empty list accepts no value, so it rejects every row.
func ParseMatchSpec(raw string, headers types.HeaderTable) (types.MatchSpec, error) {
	entries, err := parseSpecObject(raw, "match", ErrMalformedMatchSpec, headers)
	if err != nil || entries == nil {
		return nil, err
	}
	return types.MatchSpec(entries), nil
}

// ParseTransformSpec decodes a transform argument such as {"AGE": "$AGE_TO_DATE"}.
// Operation names are kept verbatim, unknown ones are resolved at apply time.
func ParseTransformSpec(raw string, headers types.HeaderTable) (types.TransformSpec, error) {
	entries, err := parseSpecObject(raw, "transform", ErrMalformedTransformSpec, headers)
	if err != nil || entries == nil {
		return nil, err
	}
	return types.TransformSpec(entries), nil
}

// parseSpecObject decodes a JSON object whose keys are column identifiers and
// whose values are a string or a list of strings. Two keys naming the same
// column keep whichever is decoded last.
func parseSpecObject(raw, argument string, malformed error, headers types.HeaderTable) (map[types.ColumnRef][]string, error) {
	if raw == "" {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w in %s argument: %s", ErrInvalidJSON, argument, err)
	}

	object, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", malformed, raw)
	}

	entries := make(map[types.ColumnRef][]string, len(object))
	for key, value := range object {
		col, err := Resolve(key, headers)
		if err != nil {
			return nil, err
		}
		values, err := stringList(value)
		if err != nil {
			return nil, fmt.Errorf("%w: column '%s' %s", malformed, key, err)
		}
		entries[col] = values
	}
	return entries, nil
}

func stringList(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("has a non-string list item %v", item)
			}
			values = append(values, str)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("has a value of type %T", value)
	}
}
