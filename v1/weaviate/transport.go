package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// request is one REST call. Body is JSON encoded when not nil. Expect
// lists the accepted statuses; empty means any 2xx.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	expect []int
}

type response struct {
	statusCode int
	header     http.Header
	body       []byte
}

// transport issues requests against one server. It is safe for concurrent
// use; the limiter is the only shared mutable state.
type transport struct {
	httpClient *http.Client
	baseURL    string
	headers    http.Header
	limiter    *rate.Limiter
	obs        *clientObserver
}

func newTransport(cfg *Config, httpClient *http.Client, obs *clientObserver) *transport {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	for name, value := range cfg.Headers {
		headers.Set(name, value)
	}
	if cfg.APIKey != "" {
		headers.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &transport{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL(),
		headers:    headers,
		limiter:    limiter,
		obs:        obs,
	}
}

// do sends req and returns the response when its status is accepted.
// It returns *ValidationError when the body cannot be encoded,
// *TransportError when no response arrives and *RequestError for any other
// status.
func (t *transport) do(ctx context.Context, req request) (*response, error) {
	var body []byte
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, invalid(req.op, fmt.Errorf("encode request body: %w", err))
		}
		body = encoded
	}

	ctx, finish := t.obs.start(ctx, operation{name: req.op, method: req.method, path: req.path})
	resp, err := t.send(ctx, req, body)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.statusCode
		}
		finish(status, 0, err)
		return nil, err
	}
	finish(resp.statusCode, int64(len(resp.body)), nil)
	return resp, nil
}

func (t *transport) send(ctx context.Context, req request, body []byte) (*response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Method: req.method, Path: req.path, Err: err}
		}
	}

	target := t.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, &TransportError{Method: req.method, Path: req.path, Err: err}
	}
	httpReq.Header = t.headers.Clone()
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if t.obs.tracer != nil {
		t.obs.tracer.InjectHeaders(ctx, httpReq.Header)
	}

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: req.method, Path: req.path, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.method, Path: req.path, Err: fmt.Errorf("read response body: %w", err)}
	}

	resp := &response{statusCode: httpResp.StatusCode, header: httpResp.Header, body: respBody}
	if !accepted(resp.statusCode, req.expect) {
		return resp, &RequestError{
			Method:     req.method,
			Path:       req.path,
			StatusCode: resp.statusCode,
			Body:       respBody,
		}
	}
	return resp, nil
}

func accepted(status int, expect []int) bool {
	if len(expect) == 0 {
		return status >= 200 && status < 300
	}
	for _, s := range expect {
		if s == status {
			return true
		}
	}
	return false
}

// doJSON sends req and decodes the body into out. A nil out discards the
// body.
func (t *transport) doJSON(ctx context.Context, req request, out any) error {
	resp, err := t.do(ctx, req)
	if err != nil {
		return err
	}
	return decode(req, resp, out)
}

func decode(req request, resp *response, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &DecodeError{Method: req.method, Path: req.path, Body: resp.body, Err: err}
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
