package utils

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrExecSequential executes a list of functions sequentially, accumulating errors if any occur.
// The accumulated error renders on a single line.
func ErrExecSequential(functions ...func() error) error {
	var multErr *multierror.Error

	for _, one := range functions {
		if err := one(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}

	if multErr == nil {
		return nil
	}
	multErr.ErrorFormat = SingleLineFormat
	return multErr.ErrorOrNil()
}

// SingleLineFormat is a multierror.ErrorFormatFunc joining errors with "; "
func SingleLineFormat(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
