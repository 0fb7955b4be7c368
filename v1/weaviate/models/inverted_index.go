package models

const (
	DefaultStopwordPreset         = "en"
	DefaultBM25B                  = 0.75
	DefaultBM25K1                 = 1.2
	DefaultInvertedCleanupSeconds = 60
)

// Stopword presets.
const (
	StopwordPresetEnglish = "en"
	StopwordPresetNone    = "none"
)

// InvertedIndexConfig configures keyword search and filtering of a class.
type InvertedIndexConfig struct {
	CleanupIntervalSeconds int             `json:"cleanupIntervalSeconds,omitempty"`
	BM25                   *BM25Config     `json:"bm25,omitempty"`
	Stopwords              *StopwordConfig `json:"stopwords,omitempty"`
	IndexTimestamps        *bool           `json:"indexTimestamps,omitempty"`
	IndexNullState         *bool           `json:"indexNullState,omitempty"`
	IndexPropertyLength    *bool           `json:"indexPropertyLength,omitempty"`
}

type BM25Config struct {
	B  float64 `json:"b"`
	K1 float64 `json:"k1"`
}

type StopwordConfig struct {
	Preset    string   `json:"preset"`
	Additions []string `json:"additions,omitempty"`
	Removals  []string `json:"removals,omitempty"`
}

// InvertedIndexConfigBuilder assembles an InvertedIndexConfig. Unset fields
// resolve to the en stopword preset, bm25 b=0.75 k1=1.2 and a 60 second
// cleanup interval.
type InvertedIndexConfigBuilder struct {
	c         InvertedIndexConfig
	preset    string
	additions []string
	removals  []string
}

// NewInvertedIndexConfig starts from the server defaults.
func NewInvertedIndexConfig() InvertedIndexConfigBuilder { return InvertedIndexConfigBuilder{} }

// WithCleanupIntervalSeconds sets the tombstone cleanup interval.
func (b InvertedIndexConfigBuilder) WithCleanupIntervalSeconds(seconds int) InvertedIndexConfigBuilder {
	b.c.CleanupIntervalSeconds = seconds
	return b
}

// WithBM25 sets the BM25 b and k1 parameters.
func (b InvertedIndexConfigBuilder) WithBM25(bValue, k1 float64) InvertedIndexConfigBuilder {
	b.c.BM25 = &BM25Config{B: bValue, K1: k1}
	return b
}

// WithStopwordPreset selects "en" or "none".
func (b InvertedIndexConfigBuilder) WithStopwordPreset(preset string) InvertedIndexConfigBuilder {
	b.preset = preset
	return b
}

// WithStopwordAdditions appends words to the stopword list.
func (b InvertedIndexConfigBuilder) WithStopwordAdditions(words ...string) InvertedIndexConfigBuilder {
	b.additions = appendCopy(b.additions, words...)
	return b
}

// WithStopwordRemovals appends words that are removed from the preset.
func (b InvertedIndexConfigBuilder) WithStopwordRemovals(words ...string) InvertedIndexConfigBuilder {
	b.removals = appendCopy(b.removals, words...)
	return b
}

// WithIndexTimestamps makes creation and update times filterable.
func (b InvertedIndexConfigBuilder) WithIndexTimestamps(enabled bool) InvertedIndexConfigBuilder {
	b.c.IndexTimestamps = ptr(enabled)
	return b
}

// WithIndexNullState makes IsNull filters possible.
func (b InvertedIndexConfigBuilder) WithIndexNullState(enabled bool) InvertedIndexConfigBuilder {
	b.c.IndexNullState = ptr(enabled)
	return b
}

// WithIndexPropertyLength makes property lengths filterable.
func (b InvertedIndexConfigBuilder) WithIndexPropertyLength(enabled bool) InvertedIndexConfigBuilder {
	b.c.IndexPropertyLength = ptr(enabled)
	return b
}

// Build fills unset fields with the defaults.
func (b InvertedIndexConfigBuilder) Build() InvertedIndexConfig {
	c := b.c
	if c.CleanupIntervalSeconds == 0 {
		c.CleanupIntervalSeconds = DefaultInvertedCleanupSeconds
	}
	if c.BM25 == nil {
		c.BM25 = &BM25Config{B: DefaultBM25B, K1: DefaultBM25K1}
	} else {
		bm25 := *c.BM25
		c.BM25 = &bm25
	}
	sw := StopwordConfig{
		Preset:    b.preset,
		Additions: cloneSlice(b.additions),
		Removals:  cloneSlice(b.removals),
	}
	if sw.Preset == "" {
		sw.Preset = DefaultStopwordPreset
	}
	c.Stopwords = &sw
	return c
}
