package provider

import (
	"errors"
	"fmt"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// ErrExhausted is returned by the aggregation layer once every provider
// in a fallback chain has failed.
var ErrExhausted = errors.New("all providers exhausted")

// Error reports a failed call to one external data source. Transport
// failures, non-2xx statuses, and 2xx bodies with an unexpected shape
// all surface as *Error so the caller can fall through to the next
// source without special-casing.
type Error struct {
	Provider domain.Source
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(p domain.Source, status int, err error) *Error {
	return &Error{Provider: p, Status: status, Err: err}
}

func failf(p domain.Source, status int, format string, args ...any) *Error {
	return newError(p, status, fmt.Errorf(format, args...))
}
