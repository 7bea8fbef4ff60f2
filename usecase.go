package quex

import (
	"context"
	"slices"

	"github.com/sasha-s/go-deadlock"
)

// Usecase is a named, ordered queue of tasks bound to a store.
type Usecase[S, P any] struct {
	store *Store[S]
	name  string

	mu    deadlock.Mutex
	tasks []TaskFunc[S]
}

// NewUsecase creates an empty usecase whose tasks receive a parameter of
// type P.
func NewUsecase[S, P any](s *Store[S], name string) *Usecase[S, P] {
	return &Usecase[S, P]{
		store: s,
		name:  name,
	}
}

// Name returns the usecase name, used as the event of every publish.
func (u *Usecase[S, P]) Name() string {
	return u.name
}

// Len returns the number of queued tasks.
func (u *Usecase[S, P]) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.tasks)
}

// Use appends tasks to the queue and returns u. Each task is wrapped by the
// store enhancers now, once. Nil tasks are skipped.
func (u *Usecase[S, P]) Use(tasks ...Task[S, P]) *Usecase[S, P] {
	wrapped := make([]TaskFunc[S], 0, len(tasks))
	for _, task := range tasks {
		if task == nil {
			continue
		}
		wrapped = append(wrapped, u.enhance(erase(task)))
	}

	u.mu.Lock()
	u.tasks = append(u.tasks, wrapped...)
	u.mu.Unlock()
	return u
}

// enhance applies the store enhancers in reverse order so that the first
// registered runs first.
func (u *Usecase[S, P]) enhance(fn TaskFunc[S]) TaskFunc[S] {
	for i := len(u.store.enhancers) - 1; i >= 0; i-- {
		fn = u.store.enhancers[i](u.name, fn)
	}
	return fn
}

// Run starts a run of the queue as it is now with param. The run proceeds
// synchronously until the first asynchronous task, so a queue without one
// has finished and published by the time Run returns. Failures never
// surface here: they are published to the listeners and kept on the
// returned Execution.
func (u *Usecase[S, P]) Run(ctx context.Context, param P) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}

	u.mu.Lock()
	queue := slices.Clone(u.tasks)
	u.mu.Unlock()

	r := &run[S, P]{
		store: u.store,
		name:  u.name,
		queue: queue,
		param: param,
		exec:  newExecution(u.name),
	}

	r.store.logger.Debug("Starting usecase %s (run %s) with %d tasks", r.name, r.exec.runID, len(queue))
	r.advance(ctx, 0, nil)
	return r.exec
}

// erase turns a typed task into a TaskFunc. The runner always calls it with
// a *TaskContext[S, P], possibly copied through WithContext.
func erase[S, P any](task Task[S, P]) TaskFunc[S] {
	return func(call Call[S]) error {
		tc, ok := call.(*TaskContext[S, P])
		if !ok {
			return ErrForeignCall
		}
		return task(tc)
	}
}
