package foldz

import (
	"fmt"
	"time"
)

// recoverFromPanic converts a panic during a reduction run into a *Error[T]
// carrying the element that was in flight. input is a pointer so the
// deferred call observes the element current at panic time, not at defer
// time.
func recoverFromPanic[T, R any](result *R, err *error, name Name, input *T) {
	if r := recover(); r != nil {
		var zero R
		*result = zero
		*err = &Error[T]{
			Path:      []Name{name},
			InputData: *input,
			Err:       fmt.Errorf("panic: %v", r),
			Timestamp: time.Now(),
		}
	}
}
