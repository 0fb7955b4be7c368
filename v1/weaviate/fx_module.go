package weaviate

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate/v1/logger"
	"github.com/Aleph-Alpha/weaviate/v1/metrics"
	"github.com/Aleph-Alpha/weaviate/v1/tracer"
	"github.com/Aleph-Alpha/weaviate/v1/vectordb"
)

// FXModule provides *Client and a vectordb.Service backed by it. A *Config
// must be available in the container; logger, metrics and tracer are
// picked up when their modules are present.
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    weaviate.FXModule,
//	    fx.Provide(
//	        weaviate.NewConfig,
//	        func() logger.Config { return logger.Config{Level: logger.Info} },
//	        func() metrics.Config { return metrics.DefaultConfig() },
//	    ),
//	)
var FXModule = fx.Module("weaviate",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) vectordb.Service { return NewAdapter(c) },
	),
	fx.Invoke(RegisterWeaviateLifecycle),
)

// WeaviateParams groups the dependencies needed to create a client.
type WeaviateParams struct {
	fx.In

	Config  *Config
	Logger  logger.Logger            `optional:"true"`
	Metrics metrics.MetricsCollector `optional:"true"`
	Tracer  *tracer.Tracer           `optional:"true"`
}

// NewClientWithDI builds a client from injected dependencies.
func NewClientWithDI(params WeaviateParams) (*Client, error) {
	var opts []Option
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.Metrics != nil {
		opts = append(opts, WithMetrics(params.Metrics))
	}
	if params.Tracer != nil {
		opts = append(opts, WithTracer(params.Tracer))
	}
	return NewClient(params.Config, opts...)
}

// WeaviateLifecycleParams groups the dependencies needed for lifecycle
// management.
type WeaviateLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
	Logger    logger.Logger `optional:"true"`
}

// RegisterWeaviateLifecycle checks readiness on start when
// Config.CheckReadyOnStart is set and releases connections on stop.
func RegisterWeaviateLifecycle(params WeaviateLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !params.Client.cfg.CheckReadyOnStart {
				return nil
			}
			if err := params.Client.Ping(ctx); err != nil {
				if params.Logger != nil {
					params.Logger.Error("weaviate is not ready", err, map[string]interface{}{
						"url": params.Client.cfg.BaseURL(),
					})
				}
				return err
			}
			if params.Logger != nil {
				params.Logger.Info("weaviate is ready", nil, map[string]interface{}{
					"url": params.Client.cfg.BaseURL(),
				})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("closing weaviate client", nil, nil)
			}
			return params.Client.Close()
		},
	})
}
