package weaviate

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

func TestBatchObjectsAddConsistencyAll(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/batch/objects", http.StatusOK, `[
		{"class":"Article","id":"36ddd591-2dee-4e7e-a3cc-eb86d30a4303","result":{"status":"SUCCESS"}},
		{"class":"Article","id":"6bb06a43-e7f0-393e-9ecf-3c0f72d4a2f9","result":{"errors":{"error":[{"message":"vector lengths don't match"}]}}}
	]`)
	c := srv.client(t)

	req := models.NewBatchObjects(
		models.NewObject("Article").WithID(articleID).WithProperty("title", models.String("first")).Build(),
		models.NewObject("Article").WithID(authorID).WithProperty("title", models.String("second")).Build(),
	)
	results, err := c.Batch.ObjectsAdd(context.Background(), req, WithConsistencyLevel(models.ConsistencyAll))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Result.Failed())
	assert.True(t, results[1].Result.Failed())

	reqs := srv.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/v1/batch/objects", reqs[0].Path)
	assert.Equal(t, "ALL", reqs[0].Query.Get("consistency_level"))

	objs := reqs[0].decodeBody(t)["objects"].([]any)
	require.Len(t, objs, 2)
	assert.Equal(t, articleID.String(), objs[0].(map[string]any)["id"])
	assert.Equal(t, authorID.String(), objs[1].(map[string]any)["id"])
}

func TestBatchObjectsDelete(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodDelete, "/v1/batch/objects", http.StatusOK,
		`{"match":{"class":"Article"},"output":"verbose","dryRun":true,"results":{"matches":2,"limit":10000,"successful":0,"failed":0}}`)
	c := srv.client(t)

	where := models.WherePath("wordCount").LessThan(100)
	resp, err := c.Batch.ObjectsDelete(context.Background(),
		models.NewBatchDelete("Article", where).WithOutput(models.DeleteOutputVerbose).WithDryRun(true))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Results.Matches)

	reqs := srv.to(http.MethodDelete, "/v1/batch/objects")
	require.Len(t, reqs, 1)
	assert.JSONEq(t,
		`{"match":{"class":"Article","where":{"operator":"LessThan","path":["wordCount"],"valueInt":100}},"output":"verbose","dryRun":true}`,
		string(reqs[0].Body))
}

func TestBatchReferencesAdd(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/batch/references", http.StatusOK,
		`[{"from":"weaviate://localhost/Article/36ddd591-2dee-4e7e-a3cc-eb86d30a4303/hasAuthors","to":"weaviate://localhost/Author/6bb06a43-e7f0-393e-9ecf-3c0f72d4a2f9","result":{"status":"SUCCESS"}}]`)
	c := srv.client(t)

	refs := []models.Reference{models.NewReference("Article", articleID, "hasAuthors", "Author", authorID)}
	results, err := c.Batch.ReferencesAdd(context.Background(), refs)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Result.Failed())

	body := srv.to(http.MethodPost, "/v1/batch/references")[0].Body
	assert.JSONEq(t, `[{"from":"weaviate://localhost/Article/36ddd591-2dee-4e7e-a3cc-eb86d30a4303/hasAuthors","to":"weaviate://localhost/Author/6bb06a43-e7f0-393e-9ecf-3c0f72d4a2f9"}]`, string(body))
}

func TestBatchValidation(t *testing.T) {
	srv := newFakeServer(t)
	c := srv.client(t)
	ctx := context.Background()

	_, err := c.Batch.ObjectsAdd(ctx, models.NewBatchObjects())
	assert.True(t, IsValidationError(err))
	_, err = c.Batch.ObjectsAdd(ctx, models.NewBatchObjects(models.Object{}))
	assert.True(t, IsValidationError(err))
	_, err = c.Batch.ObjectsDelete(ctx, models.NewBatchDelete("Article", models.And()))
	assert.True(t, IsValidationError(err))
	_, err = c.Batch.ReferencesAdd(ctx, nil)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, srv.all())
}
