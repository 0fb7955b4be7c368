// Package metrics exposes Prometheus metrics for the Weaviate client.
//
// *Metrics implements observability.Observer, so it can be handed to the
// client directly:
//
//	m := metrics.NewMetrics(metrics.Config{Namespace: "search", ServiceName: "indexer"})
//	client, err := weaviate.NewClient(cfg, weaviate.WithObserver(m))
//
// Every request is counted by component, operation and status, its latency is
// recorded in a histogram, and pollers count their status checks per job.
// Each Metrics instance owns its registry; when Config.Address is set, FXModule
// serves it on /metrics.
package metrics
