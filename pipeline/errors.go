package pipeline

import "errors"

// Every pipeline failure wraps one of these, callers match them with errors.Is.
var (
	ErrInvalidColumnNumber    = errors.New("invalid column number")
	ErrColumnNotFound         = errors.New("column not found in headers")
	ErrInvalidHeaderRow       = errors.New("invalid headers row")
	ErrMalformedMatchSpec     = errors.New("match values must be strings or lists of strings")
	ErrMalformedTransformSpec = errors.New("transform values must be strings or lists of strings")
	ErrInvalidJSON            = errors.New("invalid JSON")
)
