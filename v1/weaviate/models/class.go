package models

// Vectorizer names used often enough to deserve a constant. Any module name
// accepted by the server works.
const (
	VectorizerNone              = "none"
	VectorizerContextionary     = "text2vec-contextionary"
	VectorizerOpenAI            = "text2vec-openai"
	VectorizerCohere            = "text2vec-cohere"
	VectorizerHuggingFace       = "text2vec-huggingface"
	VectorizerTransformers      = "text2vec-transformers"
	VectorizerMultiModalClip    = "multi2vec-clip"
	VectorizerReferenceCentroid = "ref2vec-centroid"
)

// DefaultVectorIndexType is used when a class does not name one.
const DefaultVectorIndexType = VectorIndexTypeHNSW

// Class is a schema definition: a named collection of objects with typed
// properties and index settings.
type Class struct {
	Class               string               `json:"class"`
	Description         string               `json:"description,omitempty"`
	Properties          []Property           `json:"properties,omitempty"`
	Vectorizer          string               `json:"vectorizer,omitempty"`
	VectorIndexType     string               `json:"vectorIndexType,omitempty"`
	VectorIndexConfig   *VectorIndexConfig   `json:"vectorIndexConfig,omitempty"`
	ModuleConfig        map[string]Value     `json:"moduleConfig,omitempty"`
	InvertedIndexConfig *InvertedIndexConfig `json:"invertedIndexConfig,omitempty"`
	ShardingConfig      *ShardingConfig      `json:"shardingConfig,omitempty"`
	ReplicationConfig   *ReplicationConfig   `json:"replicationConfig,omitempty"`
	MultiTenancyConfig  *MultiTenancyConfig  `json:"multiTenancyConfig,omitempty"`
}

// Property returns the property called name.
func (c Class) Property(name string) (Property, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Schema is the body of GET /v1/schema.
type Schema struct {
	Classes []Class `json:"classes"`
}

// Class returns the class called name.
func (s Schema) Class(name string) (Class, bool) {
	for _, c := range s.Classes {
		if c.Class == name {
			return c, true
		}
	}
	return Class{}, false
}

// ClassBuilder assembles a Class. Nested configs stay unset unless given,
// in which case the server applies its own defaults to them. Build resolves
// the vector index type to hnsw.
//
//	article := models.NewClass("Article").
//		WithDescription("News articles").
//		WithProperty(models.NewProperty("title", models.DataTypeText).Build()).
//		WithShardingConfig(models.NewShardingConfig().WithDesiredCount(3).Build()).
//		Build()
type ClassBuilder struct {
	c Class
}

// NewClass starts a class definition.
func NewClass(name string) ClassBuilder {
	return ClassBuilder{c: Class{Class: name}}
}

// WithDescription sets the class description.
func (b ClassBuilder) WithDescription(description string) ClassBuilder {
	b.c.Description = description
	return b
}

// WithProperty appends a property.
func (b ClassBuilder) WithProperty(p Property) ClassBuilder {
	b.c.Properties = appendCopy(b.c.Properties, p)
	return b
}

// WithProperties appends properties in order.
func (b ClassBuilder) WithProperties(ps ...Property) ClassBuilder {
	b.c.Properties = appendCopy(b.c.Properties, ps...)
	return b
}

// WithVectorizer sets the vectorizer module, or VectorizerNone.
func (b ClassBuilder) WithVectorizer(vectorizer string) ClassBuilder {
	b.c.Vectorizer = vectorizer
	return b
}

// WithVectorIndexType overrides the default "hnsw".
func (b ClassBuilder) WithVectorIndexType(indexType string) ClassBuilder {
	b.c.VectorIndexType = indexType
	return b
}

// WithVectorIndexConfig sets the vector index settings.
func (b ClassBuilder) WithVectorIndexConfig(cfg VectorIndexConfig) ClassBuilder {
	b.c.VectorIndexConfig = &cfg
	return b
}

// WithModuleConfig sets the settings of one module, replacing earlier
// settings for the same module.
func (b ClassBuilder) WithModuleConfig(module string, settings Value) ClassBuilder {
	b.c.ModuleConfig = setCopy(b.c.ModuleConfig, module, settings)
	return b
}

// WithInvertedIndexConfig sets the inverted index settings.
func (b ClassBuilder) WithInvertedIndexConfig(cfg InvertedIndexConfig) ClassBuilder {
	b.c.InvertedIndexConfig = &cfg
	return b
}

// WithShardingConfig sets the sharding settings.
func (b ClassBuilder) WithShardingConfig(cfg ShardingConfig) ClassBuilder {
	b.c.ShardingConfig = &cfg
	return b
}

// WithReplicationConfig sets the replication settings.
func (b ClassBuilder) WithReplicationConfig(cfg ReplicationConfig) ClassBuilder {
	b.c.ReplicationConfig = &cfg
	return b
}

// WithMultiTenancy enables or disables tenants on the class.
func (b ClassBuilder) WithMultiTenancy(enabled bool) ClassBuilder {
	b.c.MultiTenancyConfig = &MultiTenancyConfig{Enabled: enabled}
	return b
}

// Build returns the class with vectorIndexType defaulted to hnsw.
func (b ClassBuilder) Build() Class {
	c := b.c
	if c.VectorIndexType == "" {
		c.VectorIndexType = DefaultVectorIndexType
	}
	c.Properties = cloneSlice(c.Properties)
	c.ModuleConfig = cloneMap(c.ModuleConfig)
	return c
}
