package weaviate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by fakeServer.
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// decodeBody unmarshals the request body into a generic value.
func (r recorded) decodeBody(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out))
	return out
}

// fakeServer is a Weaviate stand-in. Routes are registered on a mux router
// before the first request; every request is recorded.
type fakeServer struct {
	*httptest.Server
	router *mux.Router

	mu       sync.Mutex
	requests []recorded
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{router: mux.NewRouter()}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	f.mu.Unlock()
	r.Body = io.NopCloser(bytes.NewReader(body))
	f.router.ServeHTTP(w, r)
}

// reply answers method+path with a fixed status and body.
func (f *fakeServer) reply(method, path string, status int, body string) {
	f.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

// sequence answers method+path with bodies in order, repeating the last.
func (f *fakeServer) sequence(method, path string, bodies ...string) {
	var mu sync.Mutex
	next := 0
	f.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		body := bodies[min(next, len(bodies)-1)]
		next++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

func (f *fakeServer) all() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.requests...)
}

// to returns the recorded requests with the given method and path.
func (f *fakeServer) to(method, path string) []recorded {
	var out []recorded
	for _, r := range f.all() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// client returns a client for f that polls every millisecond.
func (f *fakeServer) client(t *testing.T, opts ...Option) *Client {
	t.Helper()
	cfg, err := FromURL(f.URL)
	require.NoError(t, err)
	cfg.WithPollInterval(time.Millisecond)
	c, err := NewClient(cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}
