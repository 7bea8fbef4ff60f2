// Package async provides the futures a quex task hands over when its result
// arrives later.
//
// A Future is the eventual result of a function running on its own
// goroutine. Go starts such a function and returns immediately; the caller
// then waits with Await, AwaitContext or AwaitWithTimeout, or polls with
// IsComplete. Resolved and Rejected build futures that are settled from the
// start, which is handy in tests and for tasks that sometimes have the
// answer at hand.
//
// # Usage
//
//	future := async.Go(ctx, func(ctx context.Context) (int, error) {
//	    return fetchCount(ctx)
//	})
//
//	// do other work
//	n, err := future.Await()
//
// A panic inside the function does not crash the process: the future
// settles with a *PanicError carrying the recovered value and the stack.
//
// If ctx is already cancelled when the goroutine starts, the function is
// not called and the future settles with the context error.
package async
