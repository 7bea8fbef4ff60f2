package quex

import (
	"context"
	"runtime/debug"

	"github.com/davidroman0O/quex/async"
)

// run is one execution of a usecase queue.
type run[S, P any] struct {
	store *Store[S]
	name  string
	queue []TaskFunc[S]
	param P
	exec  *Execution
}

// advance executes tasks until the queue is exhausted, a task fails, or a
// task suspends on a future. next is the queue index of the next queued
// task; cont, when set, runs before it and is not enhanced.
func (r *run[S, P]) advance(ctx context.Context, next int, cont Task[S, P]) {
	logger := r.store.logger

	for {
		if cont == nil && next >= len(r.queue) {
			r.finish()
			return
		}
		if err := ctx.Err(); err != nil {
			r.fail(next, err)
			return
		}

		step := next
		var fn TaskFunc[S]
		switch {
		case cont != nil:
			step = next - 1
			fn = erase(cont)
			cont = nil
		default:
			fn = r.queue[next]
			next++
		}

		tc := &TaskContext[S, P]{
			ctx:     ctx,
			usecase: r.name,
			step:    step,
			runID:   r.exec.runID,
			state:   r.store.cell.Get(),
			param:   r.param,
			logger:  logger,
			out:     &outcome[S, P]{},
		}

		logger.Debug("Executing task %d/%d of usecase %s", step+1, len(r.queue), r.name)
		if err := invoke[S](fn, tc); err != nil {
			r.fail(step, err)
			return
		}
		if tc.out.err != nil {
			r.fail(step, tc.out.err)
			return
		}

		if tc.out.future != nil {
			logger.Debug("Task %d of usecase %s is pending", step+1, r.name)
			r.publish(nil)
			go r.resume(ctx, next, step, tc.out.future)
			return
		}

		if err := r.applyPatches(tc.out.patches); err != nil {
			r.fail(step, err)
			return
		}
		r.exec.stepDone()
	}
}

// resume waits for the future of a suspended task and carries on.
func (r *run[S, P]) resume(ctx context.Context, next, step int, f *async.Future[Task[S, P]]) {
	cont, err := f.AwaitContext(ctx)
	if err != nil {
		r.fail(step, err)
		return
	}
	r.exec.stepDone()
	r.advance(ctx, next, cont)
}

func (r *run[S, P]) finish() {
	r.store.logger.Debug("Usecase %s (run %s) completed", r.name, r.exec.runID)
	r.publish(nil)
	r.exec.complete(nil)
}

func (r *run[S, P]) fail(step int, err error) {
	taskErr := &TaskError{
		Usecase: r.name,
		Step:    step,
		RunID:   r.exec.runID,
		Err:     err,
	}
	r.store.logger.Error("Usecase %s (run %s) failed: %v", r.name, r.exec.runID, taskErr)
	r.publish(taskErr)
	r.exec.complete(taskErr)
}

func (r *run[S, P]) publish(err error) {
	if perr := r.store.cell.Publish(r.name, err); perr != nil {
		r.store.logger.Warn("Listener of usecase %s panicked: %v", r.name, perr)
	}
}

// applyPatches merges patches in order through the updater, turning a
// panic of the updater into a *PanicError.
func (r *run[S, P]) applyPatches(patches []S) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Value: rec, Stack: debug.Stack()}
		}
	}()
	for _, patch := range patches {
		if _, err := r.store.cell.SetE(patch); err != nil {
			return err
		}
	}
	return nil
}

// invoke calls fn, turning a panic into a *PanicError.
func invoke[S any](fn TaskFunc[S], call Call[S]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Value: rec, Stack: debug.Stack()}
		}
	}()
	return fn(call)
}
