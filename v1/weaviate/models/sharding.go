package models

const (
	DefaultShardingKey                = "_id"
	DefaultShardingStrategy           = "hash"
	DefaultShardingFunction           = "murmur3"
	DefaultShardingVirtualPerPhysical = 128
)

// ShardingConfig controls how a class is split into shards. The actual*
// counts are reported by the server and ignored on create.
type ShardingConfig struct {
	VirtualPerPhysical  int    `json:"virtualPerPhysical,omitempty"`
	DesiredCount        int    `json:"desiredCount,omitempty"`
	ActualCount         int    `json:"actualCount,omitempty"`
	DesiredVirtualCount int    `json:"desiredVirtualCount,omitempty"`
	ActualVirtualCount  int    `json:"actualVirtualCount,omitempty"`
	Key                 string `json:"key,omitempty"`
	Strategy            string `json:"strategy,omitempty"`
	Function            string `json:"function,omitempty"`
}

// ShardingConfigBuilder assembles a ShardingConfig. Unset fields resolve to
// key _id, strategy hash, function murmur3 and 128 virtual shards per
// physical shard.
type ShardingConfigBuilder struct {
	c ShardingConfig
}

// NewShardingConfig starts from the server defaults.
func NewShardingConfig() ShardingConfigBuilder { return ShardingConfigBuilder{} }

// WithVirtualPerPhysical sets the virtual shards per physical shard.
func (b ShardingConfigBuilder) WithVirtualPerPhysical(n int) ShardingConfigBuilder {
	b.c.VirtualPerPhysical = n
	return b
}

// WithDesiredCount sets the number of physical shards.
func (b ShardingConfigBuilder) WithDesiredCount(n int) ShardingConfigBuilder {
	b.c.DesiredCount = n
	return b
}

// WithDesiredVirtualCount sets the number of virtual shards.
func (b ShardingConfigBuilder) WithDesiredVirtualCount(n int) ShardingConfigBuilder {
	b.c.DesiredVirtualCount = n
	return b
}

// WithKey sets the sharding key.
func (b ShardingConfigBuilder) WithKey(key string) ShardingConfigBuilder {
	b.c.Key = key
	return b
}

// WithStrategy sets the sharding strategy.
func (b ShardingConfigBuilder) WithStrategy(strategy string) ShardingConfigBuilder {
	b.c.Strategy = strategy
	return b
}

// WithFunction sets the hash function.
func (b ShardingConfigBuilder) WithFunction(function string) ShardingConfigBuilder {
	b.c.Function = function
	return b
}

// Build fills unset fields with the defaults.
func (b ShardingConfigBuilder) Build() ShardingConfig {
	c := b.c
	if c.Key == "" {
		c.Key = DefaultShardingKey
	}
	if c.Strategy == "" {
		c.Strategy = DefaultShardingStrategy
	}
	if c.Function == "" {
		c.Function = DefaultShardingFunction
	}
	if c.VirtualPerPhysical == 0 {
		c.VirtualPerPhysical = DefaultShardingVirtualPerPhysical
	}
	return c
}
