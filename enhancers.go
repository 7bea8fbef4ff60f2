package quex

import (
	"context"
	"time"
)

// LoggingEnhancer logs the start, the end and the duration of every task.
// A nil logger falls back to the store logger.
func LoggingEnhancer[S any](logger Logger) Enhancer[S] {
	return func(usecase string, next TaskFunc[S]) TaskFunc[S] {
		return func(call Call[S]) error {
			log := logger
			if log == nil {
				log = call.Logger()
			}

			log.Info("Enhancer: Starting task %d of usecase %s (run %s)", call.Step(), usecase, call.RunID())

			start := time.Now()
			err := next(call)
			duration := time.Since(start)

			switch {
			case err != nil:
				log.Error("Enhancer: Task %d of usecase %s failed after %v: %v",
					call.Step(), usecase, duration.Round(time.Millisecond), err)
			case call.Suspended():
				log.Info("Enhancer: Task %d of usecase %s suspended after %v",
					call.Step(), usecase, duration.Round(time.Millisecond))
			default:
				log.Info("Enhancer: Task %d of usecase %s completed in %v",
					call.Step(), usecase, duration.Round(time.Millisecond))
			}

			return err
		}
	}
}

// ContextEnhancer derives the context of every task with derive, for
// instance to attach values. derive must not cancel the context it returns
// when the task ends: asynchronous results keep using it.
func ContextEnhancer[S any](derive func(call Call[S]) context.Context) Enhancer[S] {
	return func(_ string, next TaskFunc[S]) TaskFunc[S] {
		return func(call Call[S]) error {
			return next(call.WithContext(derive(call)))
		}
	}
}
