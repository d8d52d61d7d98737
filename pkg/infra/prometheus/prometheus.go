package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000,
	}

	HTTPRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moderation_http_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)

	ModerationVerdictTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_verdicts_total",
			Help: "Moderation verdicts by flag",
		},
		[]string{"flag"},
	)

	ClassifierRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_classifier_requests_total",
			Help: "Outbound classification calls by result",
		},
		[]string{"result"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moderation_classifier_latency_ms",
			Help:    "Classification call latency in milliseconds",
			Buckets: latencyBuckets,
		},
	)
)

// Registry exposes the private registry to the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
