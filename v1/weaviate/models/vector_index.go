package models

// Vector index types.
const (
	VectorIndexTypeHNSW = "hnsw"
	VectorIndexTypeFlat = "flat"
)

// Distance metrics.
const (
	DistanceCosine    = "cosine"
	DistanceDot       = "dot"
	DistanceL2Squared = "l2-squared"
	DistanceHamming   = "hamming"
	DistanceManhattan = "manhattan"
)

// Product quantization encoders and distributions.
const (
	PQEncoderKMeans = "kmeans"
	PQEncoderTile   = "tile"

	PQDistributionLogNormal = "log-normal"
	PQDistributionNormal    = "normal"
)

// VectorIndexConfig configures the HNSW index of a class.
type VectorIndexConfig struct {
	Distance               string    `json:"distance,omitempty"`
	EF                     *int      `json:"ef,omitempty"`
	EFConstruction         *int      `json:"efConstruction,omitempty"`
	MaxConnections         *int      `json:"maxConnections,omitempty"`
	DynamicEFMin           *int      `json:"dynamicEfMin,omitempty"`
	DynamicEFMax           *int      `json:"dynamicEfMax,omitempty"`
	DynamicEFFactor        *int      `json:"dynamicEfFactor,omitempty"`
	VectorCacheMaxObjects  *int64    `json:"vectorCacheMaxObjects,omitempty"`
	FlatSearchCutoff       *int      `json:"flatSearchCutoff,omitempty"`
	CleanupIntervalSeconds *int      `json:"cleanupIntervalSeconds,omitempty"`
	Skip                   *bool     `json:"skip,omitempty"`
	PQ                     *PQConfig `json:"pq,omitempty"`
}

// PQConfig configures product quantization.
type PQConfig struct {
	Enabled        bool       `json:"enabled"`
	BitCompression *bool      `json:"bitCompression,omitempty"`
	Segments       *int       `json:"segments,omitempty"`
	Centroids      *int       `json:"centroids,omitempty"`
	TrainingLimit  *int       `json:"trainingLimit,omitempty"`
	Encoder        *PQEncoder `json:"encoder,omitempty"`
}

type PQEncoder struct {
	Type         string `json:"type"`
	Distribution string `json:"distribution"`
}

// PQConfigBuilder assembles a PQConfig. Build defaults the encoder to
// kmeans with a log-normal distribution.
type PQConfigBuilder struct {
	pq PQConfig
}

// NewPQConfig starts a product quantization config.
func NewPQConfig() PQConfigBuilder { return PQConfigBuilder{} }

// WithEnabled turns compression on or off.
func (b PQConfigBuilder) WithEnabled(enabled bool) PQConfigBuilder {
	b.pq.Enabled = enabled
	return b
}

// WithBitCompression toggles bit compression.
func (b PQConfigBuilder) WithBitCompression(enabled bool) PQConfigBuilder {
	b.pq.BitCompression = ptr(enabled)
	return b
}

// WithSegments sets the number of segments.
func (b PQConfigBuilder) WithSegments(segments int) PQConfigBuilder {
	b.pq.Segments = ptr(segments)
	return b
}

// WithCentroids sets the number of centroids.
func (b PQConfigBuilder) WithCentroids(centroids int) PQConfigBuilder {
	b.pq.Centroids = ptr(centroids)
	return b
}

// WithTrainingLimit caps the objects used to train the codebook.
func (b PQConfigBuilder) WithTrainingLimit(limit int) PQConfigBuilder {
	b.pq.TrainingLimit = ptr(limit)
	return b
}

// WithEncoder sets the encoder. Empty arguments keep the defaults.
func (b PQConfigBuilder) WithEncoder(encoderType, distribution string) PQConfigBuilder {
	b.pq.Encoder = &PQEncoder{Type: encoderType, Distribution: distribution}
	return b
}

// Build returns the config, disabled with a kmeans/log-normal encoder by default.
func (b PQConfigBuilder) Build() PQConfig {
	pq := b.pq
	enc := PQEncoder{Type: PQEncoderKMeans, Distribution: PQDistributionLogNormal}
	if pq.Encoder != nil {
		if pq.Encoder.Type != "" {
			enc.Type = pq.Encoder.Type
		}
		if pq.Encoder.Distribution != "" {
			enc.Distribution = pq.Encoder.Distribution
		}
	}
	pq.Encoder = &enc
	return pq
}

// VectorIndexConfigBuilder assembles a VectorIndexConfig. Build defaults
// the distance to cosine and product quantization to disabled.
//
//	cfg := models.NewVectorIndexConfig().
//		WithDistance(models.DistanceDot).
//		WithEFConstruction(128).
//		WithPQ(models.NewPQConfig().WithEnabled(true).WithSegments(96).Build()).
//		Build()
type VectorIndexConfigBuilder struct {
	c VectorIndexConfig
}

// NewVectorIndexConfig starts an HNSW index config.
func NewVectorIndexConfig() VectorIndexConfigBuilder { return VectorIndexConfigBuilder{} }

// WithDistance sets the distance metric.
func (b VectorIndexConfigBuilder) WithDistance(distance string) VectorIndexConfigBuilder {
	b.c.Distance = distance
	return b
}

// WithEF sets the search list size; -1 means dynamic.
func (b VectorIndexConfigBuilder) WithEF(ef int) VectorIndexConfigBuilder {
	b.c.EF = ptr(ef)
	return b
}

// WithEFConstruction sets the build-time search list size.
func (b VectorIndexConfigBuilder) WithEFConstruction(ef int) VectorIndexConfigBuilder {
	b.c.EFConstruction = ptr(ef)
	return b
}

// WithMaxConnections sets the graph degree.
func (b VectorIndexConfigBuilder) WithMaxConnections(n int) VectorIndexConfigBuilder {
	b.c.MaxConnections = ptr(n)
	return b
}

// WithDynamicEF sets the bounds and factor used when ef is -1.
func (b VectorIndexConfigBuilder) WithDynamicEF(lower, upper, factor int) VectorIndexConfigBuilder {
	b.c.DynamicEFMin = ptr(lower)
	b.c.DynamicEFMax = ptr(upper)
	b.c.DynamicEFFactor = ptr(factor)
	return b
}

// WithVectorCacheMaxObjects caps the in-memory vector cache.
func (b VectorIndexConfigBuilder) WithVectorCacheMaxObjects(n int64) VectorIndexConfigBuilder {
	b.c.VectorCacheMaxObjects = ptr(n)
	return b
}

// WithFlatSearchCutoff sets when filtered searches fall back to a flat scan.
func (b VectorIndexConfigBuilder) WithFlatSearchCutoff(n int) VectorIndexConfigBuilder {
	b.c.FlatSearchCutoff = ptr(n)
	return b
}

// WithCleanupIntervalSeconds sets the tombstone cleanup interval.
func (b VectorIndexConfigBuilder) WithCleanupIntervalSeconds(seconds int) VectorIndexConfigBuilder {
	b.c.CleanupIntervalSeconds = ptr(seconds)
	return b
}

// WithSkip disables indexing.
func (b VectorIndexConfigBuilder) WithSkip(skip bool) VectorIndexConfigBuilder {
	b.c.Skip = ptr(skip)
	return b
}

// WithPQ sets product quantization.
func (b VectorIndexConfigBuilder) WithPQ(pq PQConfig) VectorIndexConfigBuilder {
	b.c.PQ = &pq
	return b
}

// Build returns the config with cosine distance unless set.
func (b VectorIndexConfigBuilder) Build() VectorIndexConfig {
	c := b.c
	if c.Distance == "" {
		c.Distance = DistanceCosine
	}
	var pq PQConfig
	if c.PQ != nil {
		pq = *c.PQ
	}
	pq = PQConfigBuilder{pq: pq}.Build()
	c.PQ = &pq
	return c
}
