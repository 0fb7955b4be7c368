package metrics

// DefaultMetricsAddress is used by DefaultConfig.
const DefaultMetricsAddress = ":9090"

// Config defines how client metrics are registered and exposed.
type Config struct {
	// Address is where the /metrics HTTP server listens, e.g. ":9090".
	// Leave empty to register metrics without starting a server, for
	// applications that already serve the Registry themselves.
	Address string `yaml:"address" toml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" toml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name, e.g. "search" gives
	// "search_weaviate_operations_total".
	Namespace string `yaml:"namespace" toml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is added as a constant "service" label.
	ServiceName string `yaml:"service_name" toml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// DefaultConfig serves metrics on :9090 with the default collectors.
func DefaultConfig() Config {
	return Config{
		Address:                 DefaultMetricsAddress,
		EnableDefaultCollectors: true,
	}
}
