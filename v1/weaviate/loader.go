package weaviate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// NewConfig reads the configuration from WEAVIATE_* environment variables
// on top of DefaultConfig. Values that fail to parse are ignored.
//
//	WEAVIATE_URL                   full URL, overrides scheme, host and base path
//	WEAVIATE_SCHEME, WEAVIATE_HOST, WEAVIATE_BASE_PATH
//	WEAVIATE_API_KEY
//	WEAVIATE_HEADERS               comma separated Name=value pairs
//	WEAVIATE_TIMEOUT               Go duration, e.g. 15s
//	WEAVIATE_RATE_LIMIT, WEAVIATE_RATE_BURST
//	WEAVIATE_POLL_INTERVAL, WEAVIATE_POLL_MAX_ATTEMPTS
//	WEAVIATE_CHECK_READY_ON_START
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WEAVIATE_URL"); v != "" {
		if fromURL, err := FromURL(v); err == nil {
			cfg = fromURL
		}
	}
	if v := os.Getenv("WEAVIATE_SCHEME"); v != "" {
		cfg.Scheme = v
	}
	if v := os.Getenv("WEAVIATE_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("WEAVIATE_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	cfg.APIKey = os.Getenv("WEAVIATE_API_KEY")

	if v := os.Getenv("WEAVIATE_HEADERS"); v != "" {
		for _, pair := range strings.Split(v, ",") {
			name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if ok && name != "" {
				cfg.WithHeader(name, value)
			}
		}
	}
	if d, ok := envDuration("WEAVIATE_TIMEOUT"); ok {
		cfg.Timeout = d
	}
	if v := os.Getenv("WEAVIATE_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.RateLimit = f
		}
	}
	if n, ok := envInt("WEAVIATE_RATE_BURST"); ok {
		cfg.RateBurst = n
	}
	if d, ok := envDuration("WEAVIATE_POLL_INTERVAL"); ok {
		cfg.Poll.Interval = d
	}
	if n, ok := envInt("WEAVIATE_POLL_MAX_ATTEMPTS"); ok {
		cfg.Poll.MaxAttempts = n
	}
	if v := os.Getenv("WEAVIATE_CHECK_READY_ON_START"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CheckReadyOnStart = b
		}
	}
	return cfg
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// fileConfig mirrors Config with durations as strings ("15s"). go-toml
// does not decode such strings into time.Duration; one shared struct keeps
// both file formats on the same parsing path.
type fileConfig struct {
	Scheme            string            `yaml:"scheme" toml:"scheme"`
	Host              string            `yaml:"host" toml:"host"`
	BasePath          string            `yaml:"base_path" toml:"base_path"`
	APIKey            string            `yaml:"api_key" toml:"api_key"`
	Headers           map[string]string `yaml:"headers" toml:"headers"`
	Timeout           string            `yaml:"timeout" toml:"timeout"`
	RateLimit         float64           `yaml:"rate_limit" toml:"rate_limit"`
	RateBurst         int               `yaml:"rate_burst" toml:"rate_burst"`
	CheckReadyOnStart bool              `yaml:"check_ready_on_start" toml:"check_ready_on_start"`
	Poll              struct {
		Interval    string `yaml:"interval" toml:"interval"`
		MaxAttempts int    `yaml:"max_attempts" toml:"max_attempts"`
	} `yaml:"poll" toml:"poll"`
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of
// DefaultConfig and validates the result.
//
//	scheme: https
//	host: weaviate.internal
//	api_key: secret
//	timeout: 15s
//	headers:
//	  X-OpenAI-Api-Key: sk-...
//	poll:
//	  interval: 500ms
//	  max_attempts: 600
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("weaviate: read config: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}

	cfg, err := fc.apply(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) (*Config, error) {
	if fc.Scheme != "" {
		cfg.Scheme = fc.Scheme
	}
	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.BasePath != "" {
		cfg.BasePath = fc.BasePath
	}
	cfg.APIKey = fc.APIKey
	for name, value := range fc.Headers {
		cfg.WithHeader(name, value)
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = d
	}
	cfg.RateLimit = fc.RateLimit
	cfg.RateBurst = fc.RateBurst
	cfg.CheckReadyOnStart = fc.CheckReadyOnStart
	if fc.Poll.Interval != "" {
		d, err := time.ParseDuration(fc.Poll.Interval)
		if err != nil {
			return nil, fmt.Errorf("poll interval: %w", err)
		}
		cfg.Poll.Interval = d
	}
	cfg.Poll.MaxAttempts = fc.Poll.MaxAttempts
	return cfg, nil
}
