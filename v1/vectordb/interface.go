package vectordb

import "context"

// Service is the storage-neutral view of a vector database: collections
// of embeddings with a payload each. Applications that only need
// similarity search depend on Service and stay unaware of the schema,
// batch and GraphQL surface of the backing store.
//
//	func NewRetriever(db vectordb.Service) *Retriever {
//	    return &Retriever{db: db}
//	}
//
//	r := NewRetriever(weaviate.NewAdapter(client))
type Service interface {
	// Search runs every request and returns one result slice per request,
	// in request order. Requests are independent; the returned error joins
	// the failures of all requests that failed.
	Search(ctx context.Context, requests ...SearchRequest) ([][]SearchResult, error)

	// Insert stores embeddings in a collection, replacing entries with the
	// same ID.
	Insert(ctx context.Context, collection string, inputs []EmbeddingInput) error

	// Delete removes entries by ID. Unknown IDs are ignored.
	Delete(ctx context.Context, collection string, ids []string) error

	// EnsureCollection creates the collection when it does not exist yet.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	GetCollection(ctx context.Context, name string) (*Collection, error)

	ListCollections(ctx context.Context) ([]string, error)
}
