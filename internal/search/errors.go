package search

import (
	"errors"
	"fmt"
)

// InvalidFilterError reports a query parameter whose value could not be
// parsed as its declared type.  Handlers translate it into HTTP 400.
type InvalidFilterError struct {
	Field string // query parameter name
	Value string // raw value as received
	Err   error  // parse failure, if any
}

func (e *InvalidFilterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidFilterError) Unwrap() error { return e.Err }

// StoreUnavailableError wraps a failed call to the performance, film or
// reservation store.  It is fatal for the request; no retry is attempted.
type StoreUnavailableError struct {
	Op  string // store operation, e.g. "count performances"
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// ErrSeatStatusUnavailable is returned by seat-status providers that cannot
// produce a snapshot.  Search recovers from it by reporting null statuses.
var ErrSeatStatusUnavailable = errors.New("seat status unavailable")

func storeErr(op string, err error) error {
	return &StoreUnavailableError{Op: op, Err: err}
}
