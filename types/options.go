package types

// Options carries the already-resolved settings of one pipeline run, after
// flags and profile values have been merged.
type Options struct {
	HeadersRow  int       `json:"headers-row"`
	SkipLines   int       `json:"skip-lines" validate:"min=0"`
	SkipResults int       `json:"skip-results" validate:"min=0"`
	Columns     []string  `json:"cols" validate:"required,min=1,dive,required"`
	Separator   string    `json:"separator" validate:"required"`
	Match       string    `json:"match,omitempty"`
	Transform   string    `json:"transform,omitempty"`
	SortBy      string    `json:"sort-by,omitempty"`
	SortOrder   SortOrder `json:"sort-order" validate:"omitempty,oneof=asc desc"`
	ShowHeaders bool      `json:"-"`
}
