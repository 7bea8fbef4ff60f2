package store

import (
	"errors"
	"fmt"
)

// ErrMergeFailed is returned when the updater cannot combine state and patch.
var ErrMergeFailed = errors.New("store: merge failed")

// ListenerPanicError reports a listener that panicked during Publish.
type ListenerPanicError struct {
	Event string
	Value any
	Stack []byte
}

func (e *ListenerPanicError) Error() string {
	return fmt.Sprintf("store: listener panicked on event %q: %v", e.Event, e.Value)
}
