package async

import (
	"errors"
	"fmt"
)

var ErrTimeout = errors.New("async: operation timed out waiting for future completion")

// PanicError is the error a future settles with when its function panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
