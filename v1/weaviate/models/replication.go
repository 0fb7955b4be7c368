package models

// ReplicationConfig sets how many copies of each shard the cluster keeps.
type ReplicationConfig struct {
	Factor int `json:"factor"`
}

// NewReplicationConfig returns a config with the given factor. A factor
// below 1 resolves to 1.
func NewReplicationConfig(factor int) ReplicationConfig {
	if factor < 1 {
		factor = 1
	}
	return ReplicationConfig{Factor: factor}
}

// MultiTenancyConfig turns on tenant partitioning for a class.
type MultiTenancyConfig struct {
	Enabled bool `json:"enabled"`
}
