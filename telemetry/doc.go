// Package telemetry instruments quex stores with OpenTelemetry and
// Prometheus.
//
// Everything here is an ordinary quex.Enhancer or quex.Listener, so it is
// wired with quex.WithEnhancer and Store.Subscribe like any other one:
//
//	tracing := telemetry.TracingEnhancer[State](otel.Tracer("app"))
//	metrics, err := telemetry.NewPrometheusMetrics("app", prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//
//	s := quex.New(State{}, quex.WithEnhancer(tracing, telemetry.PrometheusEnhancer[State](metrics)))
//	s.Subscribe(telemetry.PrometheusListener[State](metrics))
//
// Enhancers observe the synchronous part of a task. A task that hands over
// an asynchronous result is reported as suspended; the continuation it
// resolves with is not enhanced and therefore not measured on its own.
package telemetry
