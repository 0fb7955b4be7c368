package weaviate

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/weaviate/v1/logger"
	"github.com/Aleph-Alpha/weaviate/v1/vectordb"
)

func TestFXModuleChecksReadiness(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/.well-known/ready", http.StatusOK, "")
	srv.reply(http.MethodGet, "/v1/schema", http.StatusOK, `{"classes":[{"class":"Article"}]}`)

	var (
		client *Client
		db     vectordb.Service
	)
	app := fxtest.New(t,
		logger.FXModule,
		FXModule,
		fx.Provide(
			func() logger.Config { return logger.Config{Level: logger.Error} },
			func() (*Config, error) {
				cfg, err := FromURL(srv.URL)
				if err != nil {
					return nil, err
				}
				return cfg.WithCheckReadyOnStart(true), nil
			},
		),
		fx.Populate(&client, &db),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Len(t, srv.to(http.MethodGet, "/v1/.well-known/ready"), 1)

	names, err := db.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Article"}, names)
	assert.NotNil(t, client.Schema)
}

func TestFXModuleFailsWhenNotReady(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/.well-known/ready", http.StatusServiceUnavailable, "")

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() *Config {
			cfg, _ := FromURL(srv.URL)
			return cfg.WithCheckReadyOnStart(true)
		}),
	)
	err := app.Start(context.Background())
	require.Error(t, err)
	status, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}
