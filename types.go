package quex

import (
	"context"

	"github.com/davidroman0O/quex/store"
)

// Listener receives the state after every publish, the name of the usecase
// that caused it and the error of a failed run, if any.
type Listener[S any] = store.Listener[S]

// Updater computes the next state from the current one and a patch.
type Updater[S any] = store.Updater[S]

// Task is one step of a usecase queue. It reads the state and the run
// parameter from tc and reports at most one outcome: a patch (tc.Patch), an
// asynchronous result (tc.Async or tc.Await), or nothing. A non-nil error
// halts the run.
type Task[S, P any] func(tc *TaskContext[S, P]) error

// TaskFunc is a task with its parameter type erased. It is the form
// enhancers wrap.
type TaskFunc[S any] func(call Call[S]) error

// Enhancer wraps every task of a usecase once, when the task is added.
type Enhancer[S any] func(usecase string, next TaskFunc[S]) TaskFunc[S]

// Call is the part of a TaskContext visible to enhancers.
type Call[S any] interface {
	// Context returns the context of the run.
	Context() context.Context

	// Usecase returns the name of the usecase being run.
	Usecase() string

	// Step returns the 0-based queue index of the task. Continuations share
	// the index of the task that produced them.
	Step() int

	// RunID identifies the run.
	RunID() string

	// State returns the state as it was when the task was invoked.
	State() S

	// Logger returns the store logger.
	Logger() Logger

	// Suspended reports whether the task handed over an asynchronous result.
	// Only meaningful once the task has returned.
	Suspended() bool

	// WithContext returns a copy of the call carrying ctx. Outcomes reported
	// on the copy are seen by the runner.
	WithContext(ctx context.Context) Call[S]
}

// Logger provides a simple interface for store logging
type Logger interface {
	// Debug logs a message at debug level
	Debug(format string, args ...interface{})

	// Info logs a message at info level
	Info(format string, args ...interface{})

	// Warn logs a message at warning level
	Warn(format string, args ...interface{})

	// Error logs a message at error level
	Error(format string, args ...interface{})
}
