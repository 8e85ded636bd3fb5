package search

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks requests that are well-formed but contradictory,
// such as asking for proximity ranking without a reference point.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports a malformed or inconsistent search parameter.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
