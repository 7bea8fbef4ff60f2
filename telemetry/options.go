package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"github.com/davidroman0O/quex"
	"github.com/davidroman0O/quex/config"
)

// Options builds the tracing, OpenTelemetry metrics and Prometheus
// enhancers described by cfg, using the global OpenTelemetry providers.
// The Prometheus metrics are returned so that PrometheusListener can be
// subscribed once the store exists.
func Options[S any](cfg config.Config, registerer prometheus.Registerer) ([]quex.Option[S], *PrometheusMetrics, error) {
	otelMetrics, err := OtelMetricsEnhancer[S](otel.Meter(cfg.TracerName))
	if err != nil {
		return nil, nil, err
	}

	promMetrics, err := NewPrometheusMetrics(cfg.MetricsNamespace, registerer)
	if err != nil {
		return nil, nil, err
	}

	opts := []quex.Option[S]{
		quex.WithEnhancer(
			TracingEnhancer[S](otel.Tracer(cfg.TracerName)),
			otelMetrics,
			PrometheusEnhancer[S](promMetrics),
		),
	}
	return opts, promMetrics, nil
}
