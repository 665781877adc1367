package types

import (
	"fmt"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/utils"
	"github.com/goccy/go-json"
)

// Profile is one named entry of the config store. Every field is optional;
// a nil field means the flag default applies.
type Profile struct {
	HeadersRow  *int           `json:"headers-row,omitempty" validate:"omitempty,min=1"`
	SkipLines   *int           `json:"skip-lines,omitempty" validate:"omitempty,min=0"`
	SkipResults *int           `json:"skip-results,omitempty" validate:"omitempty,min=0"`
	Cols        []string       `json:"cols,omitempty" validate:"omitempty,dive,required"`
	Match       map[string]any `json:"match,omitempty"`
	SortBy      *string        `json:"sort-by,omitempty"`
	Transform   map[string]any `json:"transform,omitempty"`
	NoHeaders   *bool          `json:"no-headers,omitempty"`
}

// ProfileFromMap decodes a raw store entry field by field so that every
// mistyped key is reported, not only the first one.
func ProfileFromMap(name string, raw map[string]any) (*Profile, error) {
	profile := &Profile{}
	err := utils.ErrExecSequential(
		decodeField(raw, constants.HeadersRow, &profile.HeadersRow),
		decodeField(raw, constants.SkipLines, &profile.SkipLines),
		decodeField(raw, constants.SkipResults, &profile.SkipResults),
		decodeField(raw, constants.Cols, &profile.Cols),
		decodeField(raw, constants.Match, &profile.Match),
		decodeField(raw, constants.SortBy, &profile.SortBy),
		decodeField(raw, constants.Transform, &profile.Transform),
		decodeField(raw, constants.NoHeaders, &profile.NoHeaders),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid profile '%s': %s", name, err)
	}
	if err := utils.Validate(profile); err != nil {
		return nil, fmt.Errorf("invalid profile '%s': %s", name, err)
	}
	return profile, nil
}

func decodeField(raw map[string]any, key string, dest any) func() error {
	return func() error {
		value, found := raw[key]
		if !found || value == nil {
			return nil
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("%s: %s", key, err)
		}
		if err := json.Unmarshal(data, dest); err != nil {
			return fmt.Errorf("%s: unexpected value %s", key, string(data))
		}
		return nil
	}
}

// MatchJSON re-encodes the profile match object so it travels the same path as the --match flag
func (p *Profile) MatchJSON() (string, error) {
	return encodeObject(p.Match)
}

// TransformJSON re-encodes the profile transform object like the --transform flag
func (p *Profile) TransformJSON() (string, error) {
	return encodeObject(p.Transform)
}

func encodeObject(object map[string]any) (string, error) {
	if object == nil {
		return "", nil
	}
	data, err := json.Marshal(object)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
