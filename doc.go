// Package quex provides a minimal state container driven by usecases.
//
// A Store holds one state value and an ordered list of listeners. A Usecase
// is a named queue of tasks built from a store. Running it executes the
// tasks in order: each task reads the current state and the run parameter
// and reports a partial state to merge, an asynchronous result, or nothing.
//
// Core components include:
//   - Store: the state cell, its listeners and the enhancers
//   - Usecase: an ordered, chainable queue of tasks
//   - TaskContext: what a task sees and how it reports its outcome
//   - Execution: the handle of one run
//
// Listeners are called with the usecase name as event. They see the state
// once when the queue is exhausted, once more every time a task suspends
// on an asynchronous result, and once with a *TaskError when a task fails.
//
// Basic usage:
//
//	type counter struct{ Count int }
//
//	s := quex.New(counter{})
//	s.Subscribe(func(state counter, event string, err error) {
//	    fmt.Println(event, state.Count, err)
//	})
//
//	increment := func(tc *quex.TaskContext[counter, int]) error {
//	    return tc.Patch(counter{Count: tc.State().Count + tc.Param()})
//	}
//
//	exec := quex.NewUsecase[counter, int](s, "increment").Use(increment).Run(ctx, 2)
//	_ = exec.Wait(ctx)
package quex
