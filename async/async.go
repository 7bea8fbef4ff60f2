package async

import (
	"context"
	"runtime/debug"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	result T
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete settles the future. Only the first call has an effect.
func (f *Future[T]) complete(result T, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to be done, whichever comes
// first. In the latter case the context error is returned and the future
// keeps running.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, ErrTimeout is returned.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Go runs fn on its own goroutine and returns a Future for its result.
// A panic inside fn settles the future with a *PanicError.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		var zero T
		defer func() {
			if r := recover(); r != nil {
				f.complete(zero, &PanicError{Value: r, Stack: debug.Stack()})
			}
		}()

		// skip the work entirely when the caller already gave up
		select {
		case <-ctx.Done():
			f.complete(zero, ctx.Err())
			return
		default:
		}

		res, err := fn(ctx)
		f.complete(res, err)
	}()

	return f
}

// Async executes fn asynchronously with param and returns a Future.
func Async[P any, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	return Go(ctx, func(ctx context.Context) (T, error) {
		return fn(ctx, param)
	})
}

// Resolved returns a future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}
