package weaviate

import (
	"context"
	"net/http"
)

const (
	livePath  = "/.well-known/live"
	readyPath = "/.well-known/ready"
)

// Health checks the liveness and readiness endpoints.
type Health struct {
	t *transport
}

// IsLive reports whether the server process answers. Any status other than
// 200 is false; only a failed request is an error.
func (h *Health) IsLive(ctx context.Context) (bool, error) {
	return h.check(ctx, "health.live", livePath)
}

// IsReady reports whether the server accepts traffic.
func (h *Health) IsReady(ctx context.Context) (bool, error) {
	return h.check(ctx, "health.ready", readyPath)
}

func (h *Health) check(ctx context.Context, op, path string) (bool, error) {
	_, err := h.t.do(ctx, request{op: op, method: http.MethodGet, path: path, expect: []int{http.StatusOK}})
	if err == nil {
		return true, nil
	}
	if IsRequestError(err) {
		return false, nil
	}
	return false, err
}
