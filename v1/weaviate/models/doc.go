// Package models holds the request and response types of the Weaviate REST
// API together with builders for the nested configuration structures.
//
// Builders are immutable values. Every With* method returns a new builder,
// so a partially configured builder can be shared and extended:
//
//	base := models.NewClass("Article").
//		WithVectorizer(models.VectorizerNone).
//		WithProperty(models.NewProperty("title", models.DataTypeText).Build())
//
//	withBody := base.WithProperty(models.NewProperty("body", models.DataTypeText).Build())
//	plain := base.Build() // still has only "title"
//
// Setters of list valued fields append, every other setter overwrites.
// Build fills in defaults:
//
//   - Class: vectorIndexType hnsw
//   - VectorIndexConfig: distance cosine, product quantization disabled with
//     a kmeans / log-normal encoder
//   - ShardingConfig: key _id, strategy hash, function murmur3, 128 virtual
//     shards per physical shard
//   - InvertedIndexConfig: stopword preset en, bm25 b=0.75 k1=1.2, cleanup
//     interval 60s
//   - ClassificationRequest: type knn
//
// Builders do no cross-field validation. The server decides what it
// accepts. The few checks that can be made locally, such as cursor
// pagination rules or malformed ids, are exposed as Validate methods and
// run by the client before a request is sent.
//
// Object properties, module configs and classification settings are user
// defined, so they are stored as Value, a JSON value union that preserves
// any nested shape:
//
//	obj := models.NewObject("Article").
//		WithID(models.NewID()).
//		WithProperty("title", models.String("Hello")).
//		WithProperty("tags", models.Strings("go", "db")).
//		WithProperty("location", models.GeoCoordinates(52.37, 4.89)).
//		Build()
//
// Where filters are built from a property path and render both as JSON,
// for batch deletes and classification, and as GraphQL input for queries:
//
//	w := models.And(
//		models.WherePath("wordCount").GreaterThan(1000),
//		models.WherePath("title").Like("*weaviate*"),
//	)
package models
