// Package monitoring exposes classifier activity as Prometheus metrics.
package monitoring

import (
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"house_classifier/internal/domain/value"
)

const namespace = "house_classifier"

type Metrics struct {
	registry *prometheus.Registry

	predictions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	rejections  *prometheus.CounterVec
}

// New registers the classifier collectors plus the Go runtime and process
// collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Number of classified houses by predicted city.",
		}, []string{"city", "scaler_mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent in the inference pipeline.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"scaler_mode"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Number of inquiries rejected before scaling, by error code.",
		}, []string{"code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.predictions,
		m.duration,
		m.rejections,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObservePrediction(city value.City, mode value.ScalerMode, duration time.Duration) {
	m.predictions.WithLabelValues(city.String(), mode.String()).Inc()
	m.duration.WithLabelValues(mode.String()).Observe(duration.Seconds())
}

func (m *Metrics) ObserveRejection(code failure.ErrorCode) {
	m.rejections.WithLabelValues(string(code)).Inc()
}
