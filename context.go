package quex

import (
	"context"

	"github.com/davidroman0O/quex/async"
)

// outcome collects what a task reported. It is shared between a
// TaskContext and the copies made by WithContext.
type outcome[S, P any] struct {
	patches []S
	future  *async.Future[Task[S, P]]
	err     error
}

// TaskContext is handed to every task. It exposes the state, the run
// parameter and the ways a task reports its outcome.
type TaskContext[S, P any] struct {
	ctx     context.Context
	usecase string
	step    int
	runID   string
	state   S
	param   P
	logger  Logger
	out     *outcome[S, P]
}

func (tc *TaskContext[S, P]) Context() context.Context { return tc.ctx }
func (tc *TaskContext[S, P]) Usecase() string          { return tc.usecase }
func (tc *TaskContext[S, P]) Step() int                { return tc.step }
func (tc *TaskContext[S, P]) RunID() string            { return tc.runID }
func (tc *TaskContext[S, P]) Logger() Logger           { return tc.logger }

// State returns the state as it was when the task was invoked.
func (tc *TaskContext[S, P]) State() S { return tc.state }

// Param returns the run parameter.
func (tc *TaskContext[S, P]) Param() P { return tc.param }

// Suspended reports whether the task handed over an asynchronous result.
func (tc *TaskContext[S, P]) Suspended() bool { return tc.out.future != nil }

// WithContext returns a copy of tc carrying ctx.
func (tc *TaskContext[S, P]) WithContext(ctx context.Context) Call[S] {
	cp := *tc
	cp.ctx = ctx
	return &cp
}

// Patch records a partial state merged through the updater once the task
// returns. Several patches are applied in order.
func (tc *TaskContext[S, P]) Patch(patch S) error {
	if tc.out.future != nil {
		return tc.mixed()
	}
	tc.out.patches = append(tc.out.patches, patch)
	return nil
}

// Await hands f over to the runner. The runner publishes the current state
// right away, waits for f and then runs the task f resolved with, if any,
// before the rest of the queue.
func (tc *TaskContext[S, P]) Await(f *async.Future[Task[S, P]]) error {
	if f == nil {
		return nil
	}
	if tc.out.future != nil || len(tc.out.patches) > 0 {
		return tc.mixed()
	}
	tc.out.future = f
	return nil
}

// Async runs fn on its own goroutine and hands the resulting future to the
// runner, see Await.
func (tc *TaskContext[S, P]) Async(fn func(ctx context.Context) (Task[S, P], error)) error {
	if tc.out.future != nil || len(tc.out.patches) > 0 {
		return tc.mixed()
	}
	return tc.Await(async.Go(tc.ctx, fn))
}

func (tc *TaskContext[S, P]) mixed() error {
	tc.out.err = ErrMixedOutcome
	return ErrMixedOutcome
}
