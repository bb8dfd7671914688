package profile

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no profile row matched the requested id.
var ErrNotFound = errors.New("profile not found")

// ErrValidation is a simple validation error raised before any store call.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// StoreError wraps a failure from a reachable store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
