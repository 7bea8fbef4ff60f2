package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidroman0O/quex"
)

// PrometheusMetrics holds the collectors fed by PrometheusEnhancer and
// PrometheusListener.
type PrometheusMetrics struct {
	taskDuration *prometheus.HistogramVec
	taskFailures *prometheus.CounterVec
	publishes    *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors under namespace and registers
// them with registerer. A nil registerer means prometheus.DefaultRegisterer.
func NewPrometheusMetrics(namespace string, registerer prometheus.Registerer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &PrometheusMetrics{
		taskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "task",
			Name:      "duration_seconds",
			Help:      "Duration of the synchronous part of quex tasks.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"usecase"}),
		taskFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "task",
			Name:      "failures_total",
			Help:      "Number of quex tasks that failed.",
		}, []string{"usecase"}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "publishes_total",
			Help:      "Number of publishes seen by listeners, by event and outcome.",
		}, []string{"event", "outcome"}),
	}

	for _, c := range []prometheus.Collector{m.taskDuration, m.taskFailures, m.publishes} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// PrometheusEnhancer observes task durations and failures in m.
func PrometheusEnhancer[S any](m *PrometheusMetrics) quex.Enhancer[S] {
	return func(usecase string, next quex.TaskFunc[S]) quex.TaskFunc[S] {
		duration := m.taskDuration.WithLabelValues(usecase)
		failures := m.taskFailures.WithLabelValues(usecase)

		return func(call quex.Call[S]) error {
			start := time.Now()
			err := next(call)
			duration.Observe(time.Since(start).Seconds())
			if err != nil {
				failures.Inc()
			}
			return err
		}
	}
}

// PrometheusListener counts publishes in m. The outcome label is "error"
// when the publish carries an error and "ok" otherwise.
func PrometheusListener[S any](m *PrometheusMetrics) quex.Listener[S] {
	return func(_ S, event string, err error) {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		m.publishes.WithLabelValues(event, outcome).Inc()
	}
}
