package service

import (
	"errors"
	"fmt"

	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("not authorized to perform this action")
	ErrConflict        = errors.New("time slot not available")
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports malformed input. It is shared with the search core
// so that transport maps both to the same response.
type ValidationError = search.ValidationError

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a failure of a backing store or an upstream dependency.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// storeErr maps repository.ErrNotFound to ErrNotFound and wraps anything else.
func storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return &StoreError{Op: op, Err: err}
}
