// Package logger provides zap-based structured logging.
//
// NewLoggerClient returns a *LoggerClient, which implements the Logger
// interface consumed by the weaviate client and the tracer. Every method takes
// a message, an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Debug,
//		ServiceName:   "indexer",
//		EnableTracing: true,
//	})
//	log.Info("backup finished", nil, map[string]interface{}{"backup_id": "nightly"})
//
// The *WithContext variants add trace_id and span_id from the OpenTelemetry
// span in ctx when EnableTracing is set.
//
// FXModule provides both the concrete type and the interface and syncs the
// logger on shutdown.
//
// Configuration via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug
//	LOGGER_SERVICE_NAME=indexer
//	LOGGER_ENABLE_TRACING=true
package logger
