// Package vectordb is a small, storage-neutral interface for similarity
// search over embeddings.
//
// [Service] covers what retrieval code needs: insert, delete, search with
// payload filters and collection management. The weaviate package
// implements it on top of its typed client with weaviate.NewAdapter.
//
// # Filters
//
// A [FilterSet] has three clauses. Must conditions are ANDed, at least one
// Should condition has to hold and MustNot conditions are excluded:
//
//	filters := vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("lang", "en")),
//	    vectordb.Should(
//	        vectordb.NewMatchAny("tags", "ml", "ai"),
//	        vectordb.NewRange("year", 2020, 2024),
//	    ),
//	    vectordb.MustNot(vectordb.NewIsNull("title")),
//	)
//
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    Collection: "Article",
//	    Vector:     embedding,
//	    TopK:       10,
//	    Filters:    filters,
//	})
//
// Value lists must not mix types, except ints with floats. Call
// [FilterSet.Validate] to check a set built from untrusted input; adapters
// validate before they send anything.
package vectordb
