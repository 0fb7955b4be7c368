package weaviate

import (
	"context"
	"net/http"

	"github.com/Aleph-Alpha/weaviate/v1/logger"
	"github.com/Aleph-Alpha/weaviate/v1/metrics"
	"github.com/Aleph-Alpha/weaviate/v1/observability"
	"github.com/Aleph-Alpha/weaviate/v1/tracer"
)

// Client is a handle on one Weaviate server. Each resource family has its
// own façade:
//
//	client.Schema.CreateClass(ctx, class)
//	client.Objects.Get(ctx, "Article", id)
//	client.Batch.ObjectsAdd(ctx, req, weaviate.WithConsistencyLevel(models.ConsistencyAll))
//	client.Backups.Create(ctx, models.BackupBackendFilesystem, req, true)
//
// A Client is read-only after construction and safe for concurrent use.
type Client struct {
	Schema         *Schema
	Objects        *Objects
	Batch          *Batch
	Backups        *Backups
	Classification *Classification
	Query          *Query
	Meta           *Meta
	Nodes          *Nodes
	OIDC           *OIDC
	Modules        *Modules
	Health         *Health

	cfg        Config
	httpClient *http.Client
	obs        *clientObserver
	transport  *transport
}

// Option customises NewClient.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient    *http.Client
	roundTripper  http.RoundTripper
	obs           clientObserver
	observers     []observability.Observer
	pollObservers pollObservers
}

// WithLogger logs every request at debug level and failures at warn level.
func WithLogger(l logger.Logger) Option {
	return func(o *clientOptions) { o.obs.logger = l }
}

// WithObserver reports every request to obs. When obs also implements
// PollObserver it is told about every status check of a waited job.
// Observers given through several options all receive reports.
func WithObserver(obs observability.Observer) Option {
	return func(o *clientOptions) {
		if obs == nil {
			return
		}
		o.observers = append(o.observers, obs)
		if po, ok := obs.(PollObserver); ok {
			o.pollObservers = append(o.pollObservers, po)
		}
	}
}

// WithMetrics records request and poll metrics in m.
func WithMetrics(m metrics.MetricsCollector) Option {
	return func(o *clientOptions) {
		if m == nil {
			return
		}
		o.observers = append(o.observers, m)
		o.pollObservers = append(o.pollObservers, m)
	}
}

// WithTracer runs every request in a client span and propagates the trace
// context to the server.
func WithTracer(t *tracer.Tracer) Option {
	return func(o *clientOptions) { o.obs.tracer = t }
}

// WithHTTPClient replaces the HTTP client. Config.Timeout is not applied
// to it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithRoundTripper keeps the default HTTP client but sends requests
// through rt.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.roundTripper = rt }
}

// NewClient validates cfg and builds a client. A nil cfg means
// DefaultConfig(). No request is made.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout, Transport: o.roundTripper}
	}

	obs := o.obs
	if len(o.observers) > 0 {
		obs.observer = observability.Multi(o.observers...)
	}
	if len(o.pollObservers) > 0 {
		obs.pollObserver = o.pollObservers
	}
	c := &Client{
		cfg:        *cfg,
		httpClient: httpClient,
		obs:        &obs,
	}
	c.transport = newTransport(&c.cfg, httpClient, c.obs)

	t := c.transport
	pollCfg := c.cfg.Poll
	c.Schema = &Schema{t: t}
	c.Objects = &Objects{t: t}
	c.Batch = &Batch{t: t}
	c.Backups = &Backups{t: t, poll: pollCfg}
	c.Classification = &Classification{t: t, poll: pollCfg}
	c.Query = &Query{t: t}
	c.Meta = &Meta{t: t}
	c.Nodes = &Nodes{t: t}
	c.OIDC = &OIDC{t: t}
	c.Modules = &Modules{t: t}
	c.Health = &Health{t: t}

	if obs.logger != nil {
		obs.logger.Info("weaviate client created", nil, map[string]interface{}{
			"url":           c.cfg.BaseURL(),
			"auth":          c.cfg.APIKey != "",
			"rate_limit":    c.cfg.RateLimit,
			"poll_attempts": c.cfg.Poll.MaxAttempts,
		})
	}
	return c, nil
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Ping reports whether the server is ready, as an error.
func (c *Client) Ping(ctx context.Context) error {
	ready, err := c.Health.IsReady(ctx)
	if err != nil {
		return err
	}
	if !ready {
		return &RequestError{Method: http.MethodGet, Path: readyPath, StatusCode: http.StatusServiceUnavailable}
	}
	return nil
}

// Close releases idle connections. The client must not be used afterwards.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
