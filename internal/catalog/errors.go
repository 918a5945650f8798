// internal/catalog/errors.go
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a valid lookup with no matching record. Callers treat it
// as an absent result, not a failure.
var ErrNotFound = errors.New("not found")

// RetrievalError wraps a transport or query failure from the underlying
// source. It is surfaced to the caller unmodified: no retry, no fallback.
type RetrievalError struct {
	Source string
	Op     string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func NewRetrievalError(source, op string, err error) *RetrievalError {
	return &RetrievalError{Source: source, Op: op, Err: err}
}
