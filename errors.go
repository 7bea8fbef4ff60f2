package quex

import (
	"errors"
	"fmt"

	"github.com/davidroman0O/quex/async"
)

var (
	// ErrMixedOutcome is reported when a task both patches the state and
	// hands over an asynchronous result, or hands over two of them.
	ErrMixedOutcome = errors.New("quex: task reported more than one kind of outcome")

	// ErrForeignCall is reported when an enhancer invokes the next task with a
	// Call that does not come from the runner.
	ErrForeignCall = errors.New("quex: call was not created by the runner")
)

// PanicError is the error a run fails with when a task panics.
type PanicError = async.PanicError

// TaskError is the error handed to listeners when a run fails.
type TaskError struct {
	// Usecase is the name of the failed usecase
	Usecase string

	// Step is the 0-based queue index of the failed task
	Step int

	// RunID identifies the failed run
	RunID string

	// Err is the underlying error
	Err error
}

func (e *TaskError) Error() string {
	if e.Usecase == "" {
		return fmt.Sprintf("task %d failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("usecase '%s': task %d failed: %v", e.Usecase, e.Step, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (e *TaskError) Unwrap() error {
	return e.Err
}
