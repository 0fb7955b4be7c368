package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/weaviate/v1/observability"
)

// MetricsCollector is implemented by *Metrics.
type MetricsCollector interface {
	observability.Observer

	// IncrementPollAttempts counts one status check issued while waiting
	// for an asynchronous job.
	IncrementPollAttempts(job string)

	// CreateCounter registers an additional CounterVec.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram registers an additional HistogramVec.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec
}
