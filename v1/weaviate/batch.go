package weaviate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Batch writes many objects or references in one request. Per item
// failures are reported in the results, not as an error.
type Batch struct {
	t *transport
}

// ObjectsAdd creates or replaces the objects of req in order.
func (b *Batch) ObjectsAdd(ctx context.Context, req models.BatchObjectsRequest, opts ...CallOption) ([]models.BatchObjectResult, error) {
	const op = "batch.objects_add"
	if len(req.Objects) == 0 {
		return nil, invalid(op, errors.New("no objects given"))
	}
	for i, obj := range req.Objects {
		if obj.Class == "" {
			return nil, invalid(op, fmt.Errorf("object %d: class name is empty", i))
		}
		if obj.ID != "" {
			if err := models.ValidateID(obj.ID); err != nil {
				return nil, invalid(op, fmt.Errorf("object %d: %w", i, err))
			}
		}
	}

	var out []models.BatchObjectResult
	r := request{
		op:     op,
		method: http.MethodPost,
		path:   "/batch/objects",
		query:  applyOptions(opts).query(paramConsistency),
		body:   req,
	}
	if err := b.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ObjectsDelete deletes every object matching req.Match. Use DryRun to
// count matches first.
func (b *Batch) ObjectsDelete(ctx context.Context, req models.BatchDeleteRequest, opts ...CallOption) (*models.BatchDeleteResponse, error) {
	const op = "batch.objects_delete"
	if err := requireClass(op, req.Match.Class); err != nil {
		return nil, err
	}
	if req.Match.Where == nil {
		return nil, invalid(op, errors.New("where filter is required"))
	}
	if err := req.Match.Where.Validate(); err != nil {
		return nil, invalid(op, err)
	}

	var out models.BatchDeleteResponse
	r := request{
		op:     op,
		method: http.MethodDelete,
		path:   "/batch/objects",
		query:  applyOptions(opts).query(paramConsistency, paramTenant),
		body:   req,
	}
	if err := b.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReferencesAdd adds cross-references in order.
func (b *Batch) ReferencesAdd(ctx context.Context, refs []models.Reference, opts ...CallOption) ([]models.BatchReferenceResult, error) {
	const op = "batch.references_add"
	if len(refs) == 0 {
		return nil, invalid(op, errors.New("no references given"))
	}
	for i, ref := range refs {
		if err := ref.Validate(); err != nil {
			return nil, invalid(op, fmt.Errorf("reference %d: %w", i, err))
		}
	}

	var out []models.BatchReferenceResult
	r := request{
		op:     op,
		method: http.MethodPost,
		path:   "/batch/references",
		query:  applyOptions(opts).query(paramConsistency),
		body:   refs,
	}
	if err := b.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}
