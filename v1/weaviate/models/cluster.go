package models

// Meta is the body of GET /v1/meta.
type Meta struct {
	Hostname string           `json:"hostname"`
	Version  string           `json:"version"`
	Modules  map[string]Value `json:"modules,omitempty"`
}

// NodeHealth is the state of a cluster node.
type NodeHealth string

const (
	NodeHealthy     NodeHealth = "HEALTHY"
	NodeUnhealthy   NodeHealth = "UNHEALTHY"
	NodeUnavailable NodeHealth = "UNAVAILABLE"
	NodeIndexing    NodeHealth = "INDEXING"
)

// NodesStatus is the body of GET /v1/nodes.
type NodesStatus struct {
	Nodes []NodeStatus `json:"nodes"`
}

type NodeStatus struct {
	Name       string            `json:"name"`
	Status     NodeHealth        `json:"status"`
	Version    string            `json:"version,omitempty"`
	GitHash    string            `json:"gitHash,omitempty"`
	Stats      *NodeStats        `json:"stats,omitempty"`
	Shards     []NodeShardStatus `json:"shards,omitempty"`
	BatchStats *NodeBatchStats   `json:"batchStats,omitempty"`
}

type NodeStats struct {
	ObjectCount int64 `json:"objectCount"`
	ShardCount  int64 `json:"shardCount"`
}

type NodeShardStatus struct {
	Name                 string `json:"name"`
	Class                string `json:"class"`
	ObjectCount          int64  `json:"objectCount"`
	VectorIndexingStatus string `json:"vectorIndexingStatus,omitempty"`
	VectorQueueLength    int64  `json:"vectorQueueLength,omitempty"`
}

type NodeBatchStats struct {
	RatePerSecond int64 `json:"ratePerSecond"`
	QueueLength   int64 `json:"queueLength,omitempty"`
}

// OIDCConfig is the body of GET /v1/.well-known/openid-configuration.
type OIDCConfig struct {
	Href     string `json:"href"`
	ClientID string `json:"clientId"`
}
