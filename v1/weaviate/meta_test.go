package weaviate

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

func TestMetaAndNodes(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/meta", http.StatusOK,
		`{"hostname":"http://[::]:8080","version":"1.24.1","modules":{"text2vec-contextionary":{"version":"en0.16.0"}}}`)
	srv.reply(http.MethodGet, "/v1/nodes", http.StatusOK,
		`{"nodes":[{"name":"node1","status":"HEALTHY","version":"1.24.1","stats":{"objectCount":3,"shardCount":1}}]}`)
	c := srv.client(t)
	ctx := context.Background()

	meta, err := c.Meta.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.24.1", meta.Version)
	assert.Contains(t, meta.Modules, "text2vec-contextionary")

	nodes, err := c.Nodes.Status(ctx)
	require.NoError(t, err)
	require.Len(t, nodes.Nodes, 1)
	assert.Equal(t, models.NodeHealthy, nodes.Nodes[0].Status)
}

func TestOIDC(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		srv := newFakeServer(t)
		srv.reply(http.MethodGet, "/v1/.well-known/openid-configuration", http.StatusOK,
			`{"href":"https://auth.example.com/.well-known/openid-configuration","clientId":"wcs"}`)
		c := srv.client(t)

		cfg, err := c.OIDC.GetConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "wcs", cfg.ClientID)
	})

	t.Run("not configured", func(t *testing.T) {
		srv := newFakeServer(t)
		srv.reply(http.MethodGet, "/v1/.well-known/openid-configuration", http.StatusNotFound, "")
		c := srv.client(t)

		_, err := c.OIDC.GetConfig(context.Background())
		assert.True(t, errors.Is(err, ErrOIDCNotConfigured))
		assert.True(t, IsNotFound(err))
	})
}

func TestContextionary(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/modules/text2vec-contextionary/concepts/fashionMagazine", http.StatusOK,
		`{"individualWords":[{"word":"fashion","present":true,"info":{"nearestNeighbors":[{"word":"style","distance":0.4}]}}]}`)
	srv.reply(http.MethodPost, "/v1/modules/text2vec-contextionary/extensions", http.StatusOK,
		`{"concept":"weaviate","definition":"an open source vector database","weight":1}`)
	c := srv.client(t)
	ctx := context.Background()

	concept, err := c.Modules.ContextionaryConcept(ctx, "fashionMagazine")
	require.NoError(t, err)
	require.Len(t, concept.IndividualWords, 1)
	assert.Equal(t, "fashion", concept.IndividualWords[0].Word)

	ext, err := c.Modules.ContextionaryExtend(ctx, models.NewContextionaryExtension("weaviate", "an open source vector database", 1))
	require.NoError(t, err)
	assert.Equal(t, "weaviate", ext.Concept)

	_, err = c.Modules.ContextionaryExtend(ctx, models.NewContextionaryExtension("x", "y", 2))
	assert.True(t, IsValidationError(err))
}

func TestHealth(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/.well-known/live", http.StatusOK, "")
	srv.reply(http.MethodGet, "/v1/.well-known/ready", http.StatusServiceUnavailable, "")
	c := srv.client(t)
	ctx := context.Background()

	live, err := c.Health.IsLive(ctx)
	require.NoError(t, err)
	assert.True(t, live)

	ready, err := c.Health.IsReady(ctx)
	require.NoError(t, err)
	assert.False(t, ready)

	err = c.Ping(ctx)
	status, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestHealthTransportError(t *testing.T) {
	srv := newFakeServer(t)
	c := srv.client(t)
	srv.Close()

	_, err := c.Health.IsReady(context.Background())
	assert.True(t, IsTransportError(err))
}
