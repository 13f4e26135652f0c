package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricNamespace = "textlabx"

	metricNameClassifications       = "classifications_total"
	metricNameClassificationLatency = "classification_duration_seconds"
	metricLabelOutcome              = "outcome"
)

// latencyBuckets cover 5ms to 30s
var latencyBuckets = []float64{
	.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30,
}

// MetricsMonitor holds and updates Prometheus metrics
type MetricsMonitor struct {
	classificationsCounterVec    *prometheus.CounterVec
	classificationLatencyHistVec *prometheus.HistogramVec
}

// NewMetricsMonitor returns a MetricsMonitor registered with registerer
func NewMetricsMonitor(registerer prometheus.Registerer) *MetricsMonitor {
	classificationsCounterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      metricNameClassifications,
			Help:      "Classification requests by outcome.",
		},
		[]string{metricLabelOutcome},
	)
	classificationLatencyHistVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      metricNameClassificationLatency,
			Help:      "Time spent classifying one text, by outcome.",
			Buckets:   latencyBuckets,
		},
		[]string{metricLabelOutcome},
	)

	registerer.MustRegister(
		classificationsCounterVec,
		classificationLatencyHistVec,
	)

	return &MetricsMonitor{
		classificationsCounterVec:    classificationsCounterVec,
		classificationLatencyHistVec: classificationLatencyHistVec,
	}
}

// ObserveOutcome records one classification
func (m *MetricsMonitor) ObserveOutcome(outcome string, latency time.Duration) {
	m.classificationsCounterVec.WithLabelValues(outcome).Inc()
	m.classificationLatencyHistVec.WithLabelValues(outcome).Observe(latency.Seconds())
}
