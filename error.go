package foldz

import (
	"fmt"
	"strings"
	"time"
)

// Error provides context about a failed reduction run. The traversal path
// has no fallible operations, so the only way a run fails is a panic in an
// accumulator, a predicate, or the source sequence itself; Error wraps the
// panic with where it happened and what element was in flight.
type Error[T any] struct {
	InputData T
	Timestamp time.Time
	Err       error
	Path      []Name
	Duration  time.Duration
}

// Error implements the error interface, providing a detailed error message.
func (e *Error[T]) Error() string {
	location := strings.Join(e.Path, " -> ")
	return fmt.Sprintf("reduction %q failed after %v: %v", location, e.Duration, e.Err)
}

// Unwrap returns the underlying error, supporting error wrapping patterns.
func (e *Error[T]) Unwrap() error {
	return e.Err
}
