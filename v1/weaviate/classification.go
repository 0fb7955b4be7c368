package weaviate

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-openapi/strfmt"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Classification schedules and inspects classification jobs.
type Classification struct {
	t    *transport
	poll PollConfig
}

// Schedule starts a classification. With wait set it returns once the job
// is completed or failed; a failed job is returned, not raised.
func (c *Classification) Schedule(ctx context.Context, req models.ClassificationRequest, wait bool) (*models.ClassificationResponse, error) {
	const op = "classification.schedule"
	if err := req.Validate(); err != nil {
		return nil, invalid(op, err)
	}

	var started models.ClassificationResponse
	if err := c.t.doJSON(ctx, request{op: op, method: http.MethodPost, path: "/classification", body: req}, &started); err != nil {
		return nil, err
	}
	if !wait {
		return &started, nil
	}
	id := started.ID
	return poll(ctx, c.poll, c.t.obs, op, &started,
		func(r *models.ClassificationResponse) bool { return r.Status.Terminal() },
		func(ctx context.Context) (*models.ClassificationResponse, error) { return c.Get(ctx, id) },
	)
}

// Get returns the current state of the classification job id.
func (c *Classification) Get(ctx context.Context, id strfmt.UUID) (*models.ClassificationResponse, error) {
	const op = "classification.get"
	if err := models.ValidateID(id); err != nil {
		return nil, invalid(op, err)
	}
	var out models.ClassificationResponse
	r := request{op: op, method: http.MethodGet, path: "/classification/" + url.PathEscape(id.String())}
	if err := c.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
