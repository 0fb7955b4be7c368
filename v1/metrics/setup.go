package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds an isolated Prometheus registry with the client metrics
// and, when an address is configured, the HTTP server exposing it.
type Metrics struct {
	// Server exposes /metrics. Nil when Config.Address is empty.
	Server *http.Server

	// Registry is private to this instance so several clients in one
	// process do not collide.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	responseBytes     *prometheus.CounterVec
	pollAttempts      *prometheus.CounterVec
}

// NewMetrics creates the registry and registers:
//
//	<ns>_weaviate_operations_total{component,operation,status}
//	<ns>_weaviate_operation_duration_seconds{component,operation}
//	<ns>_weaviate_response_bytes_total{component,operation}
//	<ns>_weaviate_poll_attempts_total{job}
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "indexer"})
//	client, _ := weaviate.NewClient(cfg, weaviate.WithObserver(m))
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)
	}

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: registerer,
	}

	m.operationsTotal = m.createCounterVec("weaviate_operations_total",
		"Total number of operations issued against Weaviate", []string{"component", "operation", "status"})
	m.operationDuration = m.createHistogramVec("weaviate_operation_duration_seconds",
		"Duration of Weaviate operations in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.responseBytes = m.createCounterVec("weaviate_response_bytes_total",
		"Response bytes received from Weaviate", []string{"component", "operation"})
	m.pollAttempts = m.createCounterVec("weaviate_poll_attempts_total",
		"Status checks issued while waiting for asynchronous jobs", []string{"job"})

	registerer.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.responseBytes,
		m.pollAttempts,
	)

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if cfg.Address != "" {
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}
	}

	return m
}
