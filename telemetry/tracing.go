package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/davidroman0O/quex"
)

const instrumentationName = "github.com/davidroman0O/quex/telemetry"

// SpanName is the name of the span opened around every task.
const SpanName = "quex.task"

// Span and metric attribute keys.
const (
	AttrUsecase   = attribute.Key("quex.usecase")
	AttrStep      = attribute.Key("quex.step")
	AttrRunID     = attribute.Key("quex.run_id")
	AttrSuspended = attribute.Key("quex.suspended")
)

// TracingEnhancer opens a span around every task. The task sees the span in
// its context. A nil tracer uses the global provider.
func TracingEnhancer[S any](tracer trace.Tracer) quex.Enhancer[S] {
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	return func(usecase string, next quex.TaskFunc[S]) quex.TaskFunc[S] {
		return func(call quex.Call[S]) error {
			ctx, span := tracer.Start(call.Context(), SpanName,
				trace.WithAttributes(
					AttrUsecase.String(usecase),
					AttrStep.Int(call.Step()),
					AttrRunID.String(call.RunID()),
				),
			)
			defer span.End()

			err := next(call.WithContext(ctx))

			span.SetAttributes(AttrSuspended.Bool(call.Suspended()))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}
