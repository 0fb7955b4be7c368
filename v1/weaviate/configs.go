package weaviate

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Default values for configuration
const (
	DefaultScheme       = "http"
	DefaultHost         = "localhost:8080"
	DefaultBasePath     = "/v1"
	DefaultTimeout      = 30 * time.Second
	DefaultPollInterval = time.Second
)

// PollConfig controls how long-running jobs are waited on.
type PollConfig struct {
	// Interval between two status checks. Defaults to one second.
	Interval time.Duration `yaml:"interval" toml:"interval" envconfig:"WEAVIATE_POLL_INTERVAL"`

	// MaxAttempts bounds the number of status checks. Zero means no bound;
	// the caller's context is then the only timeout.
	MaxAttempts int `yaml:"max_attempts" toml:"max_attempts" envconfig:"WEAVIATE_POLL_MAX_ATTEMPTS"`
}

// Config holds connection settings for the Weaviate client.
//
// Example (programmatic):
//
//	cfg := weaviate.DefaultConfig()
//	cfg.Host = "weaviate.internal:8080"
//	cfg.APIKey = os.Getenv("WEAVIATE_API_KEY")
//
// Example (builder style):
//
//	cfg, err := weaviate.FromURL("https://demo.weaviate.network")
//	if err != nil {
//	    return err
//	}
//	cfg = cfg.WithAPIKey(key).
//	    WithProviderKey("OpenAI", os.Getenv("OPENAI_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Scheme is "http" or "https".
	Scheme string `yaml:"scheme" toml:"scheme" envconfig:"WEAVIATE_SCHEME"`

	// Host including the port, e.g. "localhost:8080".
	Host string `yaml:"host" toml:"host" envconfig:"WEAVIATE_HOST"`

	// BasePath is prepended to every REST path. Defaults to "/v1".
	BasePath string `yaml:"base_path" toml:"base_path" envconfig:"WEAVIATE_BASE_PATH"`

	// APIKey is sent as a bearer token when set.
	APIKey string `yaml:"api_key" toml:"api_key" envconfig:"WEAVIATE_API_KEY"`

	// Headers are sent with every request. Vectorizer modules read their
	// provider keys from headers such as X-OpenAI-Api-Key.
	Headers map[string]string `yaml:"headers" toml:"headers" envconfig:"WEAVIATE_HEADERS"`

	// Timeout of a single HTTP request. Zero disables it.
	Timeout time.Duration `yaml:"timeout" toml:"timeout" envconfig:"WEAVIATE_TIMEOUT"`

	// RateLimit caps requests per second on this client. Zero disables it.
	RateLimit float64 `yaml:"rate_limit" toml:"rate_limit" envconfig:"WEAVIATE_RATE_LIMIT"`

	// RateBurst is the token bucket size when RateLimit is set. Defaults to 1.
	RateBurst int `yaml:"rate_burst" toml:"rate_burst" envconfig:"WEAVIATE_RATE_BURST"`

	Poll PollConfig `yaml:"poll" toml:"poll"`

	// CheckReadyOnStart makes the FX lifecycle hook fail the application
	// start when the server is not ready.
	CheckReadyOnStart bool `yaml:"check_ready_on_start" toml:"check_ready_on_start" envconfig:"WEAVIATE_CHECK_READY_ON_START"`
}

// DefaultConfig provides sensible defaults for a local instance.
func DefaultConfig() *Config {
	return &Config{
		Scheme:   DefaultScheme,
		Host:     DefaultHost,
		BasePath: DefaultBasePath,
		Timeout:  DefaultTimeout,
		Poll: PollConfig{
			Interval: DefaultPollInterval,
		},
	}
}

// FromURL returns a default config pointing at rawURL. A path in rawURL
// replaces the base path.
func FromURL(rawURL string) (*Config, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: url %q needs a scheme and a host", ErrInvalidConfig, rawURL)
	}

	cfg := DefaultConfig()
	cfg.Scheme = u.Scheme
	cfg.Host = u.Host
	if p := strings.TrimRight(u.Path, "/"); p != "" {
		cfg.BasePath = p
	}
	return cfg, nil
}

// Builder-style helpers
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithHeader adds a header sent with every request.
func (c *Config) WithHeader(name, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[name] = value
	return c
}

// WithProviderKey sets the X-<provider>-Api-Key header read by vectorizer
// and generative modules, e.g. WithProviderKey("OpenAI", key).
func (c *Config) WithProviderKey(provider, key string) *Config {
	return c.WithHeader("X-"+provider+"-Api-Key", key)
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// WithRateLimit caps the client at perSecond requests with the given burst.
func (c *Config) WithRateLimit(perSecond float64, burst int) *Config {
	c.RateLimit = perSecond
	c.RateBurst = burst
	return c
}

// WithPollInterval sets the delay between two job status checks.
func (c *Config) WithPollInterval(d time.Duration) *Config {
	c.Poll.Interval = d
	return c
}

// WithPollMaxAttempts bounds the status checks of a waited job. Zero means no bound.
func (c *Config) WithPollMaxAttempts(n int) *Config {
	c.Poll.MaxAttempts = n
	return c
}

// WithCheckReadyOnStart makes the FX start hook require a ready server.
func (c *Config) WithCheckReadyOnStart(enabled bool) *Config {
	c.CheckReadyOnStart = enabled
	return c
}

// Validate ensures the config can be used to build a client.
func (c *Config) Validate() error {
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidConfig, c.Scheme)
	}
	if c.Host == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidConfig)
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("%w: base path %q must start with /", ErrInvalidConfig, c.BasePath)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout is negative", ErrInvalidConfig)
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit and burst must not be negative", ErrInvalidConfig)
	}
	if c.Poll.Interval < 0 || c.Poll.MaxAttempts < 0 {
		return fmt.Errorf("%w: poll interval and max attempts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// BaseURL is the URL every REST path is appended to.
func (c *Config) BaseURL() string {
	return c.Scheme + "://" + c.Host + c.BasePath
}
