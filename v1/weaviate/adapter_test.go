package weaviate

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/weaviate/v1/vectordb"
	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

const articleClass = `{"class":"Article","vectorizer":"none","vectorIndexType":"hnsw",
	"vectorIndexConfig":{"distance":"cosine"},
	"properties":[
		{"name":"title","dataType":["text"]},
		{"name":"year","dataType":["int"]},
		{"name":"hasAuthors","dataType":["Author"]}
	]}`

func TestAdapterSearch(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/schema/Article", http.StatusOK, articleClass)
	srv.reply(http.MethodPost, "/v1/graphql", http.StatusOK, `{"data":{"Get":{"Article":[
		{"title":"Hello","year":2021,"_additional":{"id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303","distance":0.25}}
	]}}}`)
	db := NewAdapter(srv.client(t))

	filters := vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewMatch("title", "Hello")),
		vectordb.MustNot(vectordb.NewMatchAny("year", 1999, 2000)),
	)
	results, err := db.Search(context.Background(),
		vectordb.SearchRequest{Collection: "Article", Vector: []float32{0.1, 0.2}, TopK: 3, Filters: filters},
		vectordb.SearchRequest{Collection: "Article", Vector: []float32{0.3, 0.4}, TopK: 1},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Len(t, results[0], 1)

	hit := results[0][0]
	assert.Equal(t, articleID.String(), hit.ID)
	assert.InDelta(t, 0.75, hit.Score, 1e-6)
	assert.Equal(t, "Hello", hit.Payload["title"])
	assert.Equal(t, "Article", hit.Collection)

	queries := srv.to(http.MethodPost, "/v1/graphql")
	require.Len(t, queries, 2)
	var filtered string
	for _, q := range queries {
		doc := q.decodeBody(t)["query"].(string)
		assert.NotContains(t, doc, "hasAuthors")
		if len(doc) > len(filtered) {
			filtered = doc
		}
	}
	assert.Contains(t, filtered, `operator: And`)
	assert.Contains(t, filtered, `operator: Not`)
	assert.Contains(t, filtered, `valueIntArray: [1999, 2000]`)
}

func TestAdapterSearchJoinsErrors(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/schema/Missing", http.StatusNotFound, "")
	db := NewAdapter(srv.client(t))

	results, err := db.Search(context.Background(),
		vectordb.SearchRequest{Collection: "Missing", Vector: []float32{1}, TopK: 1},
		vectordb.SearchRequest{Collection: "Article", TopK: 1},
	)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsValidationError(err))
	assert.Len(t, results, 2)
}

func TestAdapterInsert(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/batch/objects", http.StatusOK, `[
		{"class":"Article","id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303","result":{}},
		{"class":"Article","id":"6bb06a43-e7f0-393e-9ecf-3c0f72d4a2f9","result":{"errors":{"error":[{"message":"bad vector"}]}}}
	]`)
	db := NewAdapter(srv.client(t))

	err := db.Insert(context.Background(), "Article", []vectordb.EmbeddingInput{
		{ID: articleID.String(), Vector: []float32{0.1}, Payload: map[string]any{"title": "a"}},
		{ID: authorID.String(), Vector: []float32{0.2}, Payload: map[string]any{"title": "b"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad vector")
	assert.Contains(t, err.Error(), authorID.String())

	objs := srv.to(http.MethodPost, "/v1/batch/objects")[0].decodeBody(t)["objects"].([]any)
	require.Len(t, objs, 2)
	first := objs[0].(map[string]any)
	assert.Equal(t, "Article", first["class"])
	assert.Equal(t, map[string]any{"title": "a"}, first["properties"])
}

func TestAdapterDelete(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodDelete, "/v1/batch/objects", http.StatusOK, `{"results":{"matches":1,"successful":1,"failed":0}}`)
	db := NewAdapter(srv.client(t))

	require.NoError(t, db.Delete(context.Background(), "Article", []string{articleID.String()}))
	assert.JSONEq(t,
		`{"match":{"class":"Article","where":{"operator":"ContainsAny","path":["id"],"valueTextArray":["36ddd591-2dee-4e7e-a3cc-eb86d30a4303"]}},"output":"minimal"}`,
		string(srv.all()[0].Body))

	err := db.Delete(context.Background(), "Article", []string{"nope"})
	assert.True(t, IsValidationError(err))
}

func TestAdapterEnsureCollection(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/schema/Article", http.StatusNotFound, "")
	srv.reply(http.MethodPost, "/v1/schema", http.StatusOK, articleClass)
	db := NewAdapter(srv.client(t))

	require.NoError(t, db.EnsureCollection(context.Background(), "Article", 384))

	body := srv.to(http.MethodPost, "/v1/schema")[0].decodeBody(t)
	assert.Equal(t, models.VectorizerNone, body["vectorizer"])
	assert.Equal(t, "cosine", body["vectorIndexConfig"].(map[string]any)["distance"])
}

func TestAdapterGetCollection(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/schema/Article", http.StatusOK, articleClass)
	srv.reply(http.MethodPost, "/v1/graphql", http.StatusOK, `{"data":{"Aggregate":{"Article":[{"meta":{"count":7}}]}}}`)
	db := NewAdapter(srv.client(t))

	coll, err := db.GetCollection(context.Background(), "Article")
	require.NoError(t, err)
	assert.Equal(t, "Article", coll.Name)
	assert.Equal(t, "cosine", coll.Distance)
	assert.Equal(t, uint64(7), coll.ObjectCount)
	assert.Equal(t, []string{"title", "year", "hasAuthors"}, coll.Properties)
}

func TestWhereFromFilters(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	where, err := whereFromFilters(vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewTimeWindow("published", from, to)),
		vectordb.Should(vectordb.NewMatch("lang", "en"), vectordb.NewIsNull("lang")),
	))
	require.NoError(t, err)
	require.NotNil(t, where)
	assert.Equal(t, models.OperatorAnd, where.Operator)
	require.Len(t, where.Operands, 2)
	assert.Equal(t, models.OperatorAnd, where.Operands[0].Operator)
	assert.Equal(t, models.OperatorOr, where.Operands[1].Operator)

	where, err = whereFromFilters(vectordb.NewFilterSet(vectordb.Must(vectordb.NewRange("year", 2000, 2010))))
	require.NoError(t, err)
	assert.Equal(t, models.OperatorAnd, where.Operator)
	assert.Equal(t, 2000.0, *where.Operands[0].ValueNumber)

	where, err = whereFromFilters(&vectordb.FilterSet{})
	require.NoError(t, err)
	assert.Nil(t, where)

	_, err = whereFromFilters(vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatchAny("tag", "a", 1))))
	assert.Error(t, err)

	_, err = whereFromFilters(vectordb.NewFilterSet(vectordb.MustNot((*vectordb.Match)(nil))))
	assert.ErrorContains(t, err, "nil condition")
}
