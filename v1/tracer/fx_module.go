package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate/v1/logger"
)

// FXModule provides *Tracer from a tracer.Config and shuts the provider
// down, flushing pending spans, when the application stops.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers the OnStop hook for t.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			return t.Shutdown(ctx)
		},
	})
}
