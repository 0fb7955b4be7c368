package vectordb

// SearchRequest is one similarity query against one collection.
type SearchRequest struct {
	Collection string     `json:"collection"`
	Vector     []float32  `json:"vector"`
	TopK       int        `json:"topK"`
	Filters    *FilterSet `json:"filters,omitempty"`

	// WithVector asks for the stored vector of every hit.
	WithVector bool `json:"withVector,omitempty"`
}

// SearchResult is one hit. Score is 1 - distance, so higher is closer
// for cosine distance.
type SearchResult struct {
	ID         string         `json:"id"`
	Score      float32        `json:"score"`
	Distance   float32        `json:"distance"`
	Payload    map[string]any `json:"payload"`
	Vector     []float32      `json:"vector,omitempty"`
	Collection string         `json:"collection,omitempty"`
}

// EmbeddingInput is one entry to store. ID must be a UUID.
type EmbeddingInput struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection describes a stored collection.
type Collection struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Vectorizer      string   `json:"vectorizer"`
	VectorIndexType string   `json:"vectorIndexType"`
	Distance        string   `json:"distance"`
	Properties      []string `json:"properties,omitempty"`
	ObjectCount     uint64   `json:"objectCount"`
	MultiTenant     bool     `json:"multiTenant,omitempty"`
}
