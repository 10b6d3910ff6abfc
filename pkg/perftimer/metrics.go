package perftimer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusObserver exports measured durations as a Prometheus histogram
// partitioned by operation label. Register it with WithObserver.
type PrometheusObserver struct {
	durations *prometheus.HistogramVec
}

// NewPrometheusObserver creates an observer registered with reg. Passing
// prometheus.DefaultRegisterer wires it into the default registry.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	return &PrometheusObserver{
		durations: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "perftimer_operation_duration_seconds",
				Help:    "Measured operation duration in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 25, 50, 100},
			},
			[]string{"label"},
		),
	}
}

// ObserveDuration implements Observer.
func (o *PrometheusObserver) ObserveDuration(label string, seconds float64) {
	o.durations.WithLabelValues(label).Observe(seconds)
}
