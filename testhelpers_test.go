package quex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type counter struct {
	Count int `json:"count"`
}

type publish struct {
	state counter
	event string
	err   error
}

// recorder is a listener that remembers every publish.
type recorder struct {
	mu    sync.Mutex
	calls []publish
}

func (r *recorder) listen(state counter, event string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, publish{state: state, event: event, err: err})
}

func (r *recorder) all() []publish {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]publish, len(r.calls))
	copy(out, r.calls)
	return out
}

func increment(tc *TaskContext[counter, int]) error {
	return tc.Patch(counter{Count: tc.State().Count + tc.Param()})
}

func asyncIncrement(tc *TaskContext[counter, int]) error {
	return tc.Async(func(ctx context.Context) (Task[counter, int], error) {
		n := tc.Param()
		return func(tc *TaskContext[counter, int]) error {
			return tc.Patch(counter{Count: tc.State().Count + n})
		}, nil
	})
}

func multiply(tc *TaskContext[counter, int]) error {
	return tc.Patch(counter{Count: tc.State().Count * tc.Param()})
}

func waitFor(t *testing.T, exec *Execution) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	select {
	case <-exec.Done():
		return exec.Err()
	case <-ctx.Done():
		require.FailNow(t, "run did not finish in time")
		return nil
	}
}
