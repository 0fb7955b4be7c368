package tracer

// Config controls the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName becomes the service.name resource attribute.
	ServiceName string `yaml:"service_name" toml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv becomes the deployment.environment resource attribute.
	AppEnv string `yaml:"app_env" toml:"app_env" envconfig:"APP_ENV"`

	// EnableExport sends spans to an OTLP/HTTP collector. The exporter also
	// honours the standard OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `yaml:"enable_export" toml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the collector URL, e.g. "http://otel:4318".
	Endpoint string `yaml:"endpoint" toml:"endpoint" envconfig:"TRACER_ENDPOINT"`
}
