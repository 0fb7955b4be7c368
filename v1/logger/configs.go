package logger

// Supported log levels.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the settings for the zap-backed logger.
type Config struct {
	// Level is one of debug, info, warning or error.
	// Anything else falls back to info.
	Level string `yaml:"level" toml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" toml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// EnableTracing makes the *WithContext methods add trace_id and span_id
	// from the active OpenTelemetry span.
	EnableTracing bool `yaml:"enable_tracing" toml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`
}
