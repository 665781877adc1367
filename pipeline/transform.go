package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/types"
)

// TransformFunc rewrites one cell value. now is the instant the run started, in UTC.
type TransformFunc func(value string, now time.Time) string

// RegisteredTransforms holds the transform operations by name. A name missing
// here is a no-op, so configs written for newer versions keep working.
var RegisteredTransforms = map[string]TransformFunc{
	constants.AgeToDate: AgeToDate,
	constants.ToLower:   toLower,
}

var agePattern = regexp.MustCompile(`(\p{Nd}+)[\s]*[a-z]*`)

// maxAgeDays keeps results well inside the range AddDate handles
const maxAgeDays = 3_000_000

// AgeToDate turns an age such as "5d" or "12 days" into the timestamp that
// many days before now. Values without a digit run are returned unchanged.
// A count that cannot be parsed, or whose date falls outside years 0 to 9999,
// counts as 0 days.
func AgeToDate(value string, now time.Time) string {
	match := agePattern.FindStringSubmatch(strings.ToLower(value))
	if match == nil {
		return value
	}

	now = now.UTC()
	days, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil || days > maxAgeDays {
		return now.Format(constants.TimestampLayout)
	}
	date := now.AddDate(0, 0, -int(days))
	if date.Year() < 0 || date.Year() > 9999 {
		return now.Format(constants.TimestampLayout)
	}
	return date.Format(constants.TimestampLayout)
}

func toLower(value string, _ time.Time) string {
	return strings.ToLower(value)
}

// Transformer applies a TransformSpec to rows
type Transformer struct {
	now func() time.Time
}

// NewTransformer returns a Transformer reading the wall clock
func NewTransformer() *Transformer {
	return &Transformer{now: time.Now}
}

// WithClock replaces the clock, used to pin $AGE_TO_DATE results
func (t *Transformer) WithClock(now func() time.Time) *Transformer {
	t.now = now
	return t
}

// Apply runs every column's operations in their given order, in place.
// Columns beyond the end of the row are skipped.
func (t *Transformer) Apply(row types.Row, spec types.TransformSpec) {
	t.apply(row, spec, t.now().UTC())
}

func (t *Transformer) apply(row types.Row, spec types.TransformSpec, now time.Time) {
	for col, operations := range spec {
		if !row.Has(col) {
			continue
		}
		for _, operation := range operations {
			if fn, found := RegisteredTransforms[operation]; found {
				row[col] = fn(row[col], now)
			}
		}
	}
}

// ApplyAll transforms every row against a single reading of the clock
func (t *Transformer) ApplyAll(rows []types.Row, spec types.TransformSpec) {
	if len(spec) == 0 {
		return
	}
	now := t.now().UTC()
	for _, row := range rows {
		t.apply(row, spec, now)
	}
}
