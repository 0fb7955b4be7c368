package weaviate

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

const (
	articleID = strfmt.UUID("36ddd591-2dee-4e7e-a3cc-eb86d30a4303")
	authorID  = strfmt.UUID("6bb06a43-e7f0-393e-9ecf-3c0f72d4a2f9")
)

func TestObjectCreateAndGet(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/objects", http.StatusOK,
		`{"class":"Article","id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303","properties":{"title":"Hello"}}`)
	srv.reply(http.MethodGet, "/v1/objects/Article/"+articleID.String(), http.StatusOK,
		`{"class":"Article","id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303","properties":{"title":"Hello","wordCount":1200},"vector":[0.1,0.2]}`)
	c := srv.client(t)
	ctx := context.Background()

	obj := models.NewObject("Article").
		WithID(articleID).
		WithProperty("title", models.String("Hello")).
		Build()
	created, err := c.Objects.Create(ctx, obj, WithConsistencyLevel(models.ConsistencyQuorum))
	require.NoError(t, err)
	assert.Equal(t, articleID, created.ID)

	post := srv.to(http.MethodPost, "/v1/objects")
	require.Len(t, post, 1)
	assert.Equal(t, "QUORUM", post[0].Query.Get("consistency_level"))

	got, err := c.Objects.Get(ctx, "Article", articleID, WithInclude(models.IncludeVector), WithTenant("tenantA"))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, got.Vector)
	words, ok := got.Properties["wordCount"].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(1200), words)

	get := srv.to(http.MethodGet, "/v1/objects/Article/"+articleID.String())
	require.Len(t, get, 1)
	assert.Equal(t, "vector", get[0].Query.Get("include"))
	assert.Equal(t, "tenantA", get[0].Query.Get("tenant"))
}

func TestObjectExists(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodHead, "/v1/objects/Article/"+articleID.String(), http.StatusNoContent, "")
	srv.reply(http.MethodHead, "/v1/objects/Article/"+authorID.String(), http.StatusNotFound, "")
	srv.reply(http.MethodHead, "/v1/objects/Broken/"+articleID.String(), http.StatusInternalServerError, "")
	c := srv.client(t)
	ctx := context.Background()

	ok, err := c.Objects.Exists(ctx, "Article", articleID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Objects.Exists(ctx, "Article", authorID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Objects.Exists(ctx, "Broken", articleID)
	assert.True(t, IsRequestError(err))
}

func TestObjectUpdateReplaceDelete(t *testing.T) {
	srv := newFakeServer(t)
	path := "/v1/objects/Article/" + articleID.String()
	srv.reply(http.MethodPatch, path, http.StatusNoContent, "")
	srv.reply(http.MethodPut, path, http.StatusOK, `{"class":"Article","id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303","properties":{"title":"New"}}`)
	srv.reply(http.MethodDelete, path, http.StatusNoContent, "")
	c := srv.client(t)
	ctx := context.Background()

	obj := models.NewObject("Article").WithID(articleID).WithProperty("title", models.String("New")).Build()
	require.NoError(t, c.Objects.Update(ctx, obj))

	replaced, err := c.Objects.Replace(ctx, obj)
	require.NoError(t, err)
	title, _ := replaced.Properties["title"].AsString()
	assert.Equal(t, "New", title)

	require.NoError(t, c.Objects.Delete(ctx, "Article", articleID, WithConsistencyLevel(models.ConsistencyAll)))
	del := srv.to(http.MethodDelete, path)
	require.Len(t, del, 1)
	assert.Equal(t, "ALL", del[0].Query.Get("consistency_level"))
}

func TestObjectValidateRejected(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/objects/validate", http.StatusUnprocessableEntity,
		`{"error":[{"message":"no such prop with name 'nope' found in class 'Article'"}]}`)
	c := srv.client(t)

	obj := models.NewObject("Article").WithProperty("nope", models.Int(1)).Build()
	err := c.Objects.Validate(context.Background(), obj)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)
	assert.Equal(t, []string{"no such prop with name 'nope' found in class 'Article'"}, reqErr.Messages())
}

func TestObjectList(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/objects", http.StatusOK, `{"objects":[{"class":"Article","id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303"}],"totalResults":1}`)
	c := srv.client(t)
	ctx := context.Background()

	list, err := c.Objects.List(ctx, models.NewObjectListParams().WithClass("Article").WithLimit(10).WithSort("title").WithOrder("asc"))
	require.NoError(t, err)
	assert.Equal(t, 1, len(list.Objects))

	reqs := srv.to(http.MethodGet, "/v1/objects")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Article", reqs[0].Query.Get("class"))
	assert.Equal(t, "10", reqs[0].Query.Get("limit"))
	assert.Equal(t, "title", reqs[0].Query.Get("sort"))

	_, err = c.Objects.List(ctx, models.NewObjectListParams().WithClass("Article").WithAfter(articleID).WithOffset(5))
	assert.True(t, IsValidationError(err))
	assert.Len(t, srv.all(), 1)
}

func TestReferences(t *testing.T) {
	srv := newFakeServer(t)
	path := "/v1/objects/Article/" + articleID.String() + "/references/hasAuthors"
	srv.reply(http.MethodPost, path, http.StatusOK, "")
	srv.reply(http.MethodPut, path, http.StatusOK, "")
	srv.reply(http.MethodDelete, path, http.StatusNoContent, "")
	c := srv.client(t)
	ctx := context.Background()

	ref := models.NewReference("Article", articleID, "hasAuthors", "Author", authorID).WithTenant("tenantA")
	require.NoError(t, c.Objects.ReferenceAdd(ctx, ref))
	require.NoError(t, c.Objects.ReferenceDelete(ctx, ref))
	require.NoError(t, c.Objects.ReferenceUpdate(ctx, "Article", articleID, "hasAuthors", []string{"Author"}, []strfmt.UUID{authorID}))

	beacon := "weaviate://localhost/Author/" + authorID.String()
	add := srv.to(http.MethodPost, path)
	require.Len(t, add, 1)
	assert.JSONEq(t, `{"beacon":"`+beacon+`"}`, string(add[0].Body))
	assert.Equal(t, "tenantA", add[0].Query.Get("tenant"))

	put := srv.to(http.MethodPut, path)
	require.Len(t, put, 1)
	assert.JSONEq(t, `[{"beacon":"`+beacon+`"}]`, string(put[0].Body))

	err := c.Objects.ReferenceUpdate(ctx, "Article", articleID, "hasAuthors", []string{"Author", "Author"}, []strfmt.UUID{authorID})
	assert.True(t, IsValidationError(err))
}

func TestObjectValidationBeforeRequest(t *testing.T) {
	srv := newFakeServer(t)
	c := srv.client(t)
	ctx := context.Background()

	_, err := c.Objects.Get(ctx, "Article", "not-a-uuid")
	assert.True(t, IsValidationError(err))
	_, err = c.Objects.Create(ctx, models.Object{})
	assert.True(t, IsValidationError(err))
	err = c.Objects.Update(ctx, models.NewObject("Article").Build())
	assert.True(t, IsValidationError(err))
	assert.Empty(t, srv.all())
}
