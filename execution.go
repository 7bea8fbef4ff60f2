package quex

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Execution is the handle of one usecase run.
type Execution struct {
	runID   string
	usecase string
	started time.Time
	done    chan struct{}

	mu    sync.Mutex
	err   error
	steps int
	ended time.Time
}

func newExecution(usecase string) *Execution {
	return &Execution{
		runID:   uuid.New().String(),
		usecase: usecase,
		started: time.Now(),
		done:    make(chan struct{}),
	}
}

// RunID identifies the run.
func (e *Execution) RunID() string { return e.runID }

// Usecase returns the name of the usecase being run.
func (e *Execution) Usecase() string { return e.usecase }

// Done is closed once the run has finished and its last publish happened.
func (e *Execution) Done() <-chan struct{} { return e.done }

// Wait blocks until the run finishes or ctx is done. It returns the run
// error, which is also what the listeners received, or the context error.
func (e *Execution) Wait(ctx context.Context) error {
	select {
	case <-e.done:
		return e.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the error the run failed with, nil while running or on success.
func (e *Execution) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Duration returns how long the run took, or has been running so far.
func (e *Execution) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ended.IsZero() {
		return time.Since(e.started)
	}
	return e.ended.Sub(e.started)
}

// Steps returns the number of tasks, continuations included, that completed.
func (e *Execution) Steps() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.steps
}

func (e *Execution) stepDone() {
	e.mu.Lock()
	e.steps++
	e.mu.Unlock()
}

func (e *Execution) complete(err error) {
	e.mu.Lock()
	e.err = err
	e.ended = time.Now()
	e.mu.Unlock()
	close(e.done)
}

// RunResult contains the result of a usecase run
type RunResult struct {
	RunID         string
	Usecase       string
	Success       bool
	Error         error
	ExecutionTime time.Duration
	Steps         int
}

// Result summarizes the run. Call it after Done is closed for final values.
func (e *Execution) Result() RunResult {
	err := e.Err()
	return RunResult{
		RunID:         e.runID,
		Usecase:       e.usecase,
		Success:       err == nil,
		Error:         err,
		ExecutionTime: e.Duration(),
		Steps:         e.Steps(),
	}
}

// FormatResults returns a human-readable summary of usecase runs
func FormatResults(results []RunResult) string {
	if len(results) == 0 {
		return "No usecases executed"
	}

	var summary strings.Builder
	successCount := 0

	for i, result := range results {
		status := "FAILED"
		if result.Success {
			status = "SUCCESS"
			successCount++
		}

		name := result.Usecase
		if name == "" {
			name = "(anonymous)"
		}

		fmt.Fprintf(&summary, "Run %d: %s [%s] - %s, %d tasks (%s)\n",
			i+1,
			name,
			result.RunID,
			status,
			result.Steps,
			result.ExecutionTime.Round(time.Millisecond),
		)

		if result.Error != nil {
			fmt.Fprintf(&summary, "  Error: %v\n", result.Error)
		}
	}

	fmt.Fprintf(&summary, "\nSummary: %d/%d runs succeeded\n",
		successCount,
		len(results),
	)

	return summary.String()
}
