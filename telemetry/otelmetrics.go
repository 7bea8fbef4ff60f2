package telemetry

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/davidroman0O/quex"
)

// Instrument names used by OtelMetricsEnhancer.
const (
	TaskDurationInstrument = "quex.task.duration"
	TaskFailuresInstrument = "quex.task.failures"
)

// OtelMetricsEnhancer records the duration of every task in a histogram and
// counts failed tasks, both with the usecase as attribute. A nil meter uses
// the global provider.
func OtelMetricsEnhancer[S any](meter metric.Meter) (quex.Enhancer[S], error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	duration, err := meter.Float64Histogram(TaskDurationInstrument,
		metric.WithDescription("Duration of the synchronous part of quex tasks"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", TaskDurationInstrument, err)
	}

	failures, err := meter.Int64Counter(TaskFailuresInstrument,
		metric.WithDescription("Number of quex tasks that failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", TaskFailuresInstrument, err)
	}

	return func(usecase string, next quex.TaskFunc[S]) quex.TaskFunc[S] {
		attrs := metric.WithAttributes(AttrUsecase.String(usecase))

		return func(call quex.Call[S]) error {
			start := time.Now()
			err := next(call)

			ctx := call.Context()
			duration.Record(ctx, time.Since(start).Seconds(), attrs)
			if err != nil {
				failures.Add(ctx, 1, attrs)
			}
			return err
		}
	}, nil
}
