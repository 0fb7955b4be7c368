package weaviate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-openapi/strfmt"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Objects reads and writes single objects and their references.
type Objects struct {
	t *transport
}

func objectPath(class string, id strfmt.UUID) string {
	return "/objects/" + url.PathEscape(class) + "/" + url.PathEscape(id.String())
}

func requireObject(op, class string, id strfmt.UUID) error {
	if err := requireClass(op, class); err != nil {
		return err
	}
	if err := models.ValidateID(id); err != nil {
		return invalid(op, err)
	}
	return nil
}

// List pages through objects. Cursor pagination with After needs Class and
// cannot be mixed with Offset or Sort.
func (o *Objects) List(ctx context.Context, params models.ObjectListParams) (*models.MultiObjects, error) {
	const op = "objects.list"
	if err := params.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	var out models.MultiObjects
	if err := o.t.doJSON(ctx, request{op: op, method: http.MethodGet, path: "/objects", query: params.Query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores obj. The server generates an id when obj.ID is empty.
func (o *Objects) Create(ctx context.Context, obj models.Object, opts ...CallOption) (*models.Object, error) {
	const op = "objects.create"
	if err := requireClass(op, obj.Class); err != nil {
		return nil, err
	}
	if obj.ID != "" {
		if err := models.ValidateID(obj.ID); err != nil {
			return nil, invalid(op, err)
		}
	}
	var out models.Object
	req := request{
		op:     op,
		method: http.MethodPost,
		path:   "/objects",
		query:  applyOptions(opts).query(paramConsistency),
		body:   obj,
	}
	if err := o.t.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one object of class. A missing object is a *RequestError with status 404.
func (o *Objects) Get(ctx context.Context, class string, id strfmt.UUID, opts ...CallOption) (*models.Object, error) {
	const op = "objects.get"
	if err := requireObject(op, class, id); err != nil {
		return nil, err
	}
	var out models.Object
	req := request{
		op:     op,
		method: http.MethodGet,
		path:   objectPath(class, id),
		query:  applyOptions(opts).query(paramConsistency, paramTenant, paramInclude),
	}
	if err := o.t.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Exists reports whether the object is stored. A 404 is false, not an
// error.
func (o *Objects) Exists(ctx context.Context, class string, id strfmt.UUID, opts ...CallOption) (bool, error) {
	const op = "objects.exists"
	if err := requireObject(op, class, id); err != nil {
		return false, err
	}
	resp, err := o.t.do(ctx, request{
		op:     op,
		method: http.MethodHead,
		path:   objectPath(class, id),
		query:  applyOptions(opts).query(paramConsistency, paramTenant),
		expect: []int{http.StatusOK, http.StatusNoContent, http.StatusNotFound},
	})
	if err != nil {
		return false, err
	}
	return resp.statusCode != http.StatusNotFound, nil
}

// Update merges the properties of obj into the stored object.
func (o *Objects) Update(ctx context.Context, obj models.Object, opts ...CallOption) error {
	const op = "objects.update"
	if err := requireObject(op, obj.Class, obj.ID); err != nil {
		return err
	}
	_, err := o.t.do(ctx, request{
		op:     op,
		method: http.MethodPatch,
		path:   objectPath(obj.Class, obj.ID),
		query:  applyOptions(opts).query(paramConsistency),
		body:   obj,
	})
	return err
}

// Replace overwrites the stored object with obj.
func (o *Objects) Replace(ctx context.Context, obj models.Object, opts ...CallOption) (*models.Object, error) {
	const op = "objects.replace"
	if err := requireObject(op, obj.Class, obj.ID); err != nil {
		return nil, err
	}
	var out models.Object
	req := request{
		op:     op,
		method: http.MethodPut,
		path:   objectPath(obj.Class, obj.ID),
		query:  applyOptions(opts).query(paramConsistency),
		body:   obj,
	}
	if err := o.t.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one object. A missing object is a *RequestError with status 404.
func (o *Objects) Delete(ctx context.Context, class string, id strfmt.UUID, opts ...CallOption) error {
	const op = "objects.delete"
	if err := requireObject(op, class, id); err != nil {
		return err
	}
	_, err := o.t.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   objectPath(class, id),
		query:  applyOptions(opts).query(paramConsistency, paramTenant),
	})
	return err
}

// Validate asks the server whether obj would be accepted, without storing
// it. A rejection is a *RequestError carrying the reasons.
func (o *Objects) Validate(ctx context.Context, obj models.Object) error {
	const op = "objects.validate"
	if err := requireClass(op, obj.Class); err != nil {
		return err
	}
	_, err := o.t.do(ctx, request{op: op, method: http.MethodPost, path: "/objects/validate", body: obj})
	return err
}

func referencePath(class string, id strfmt.UUID, property string) string {
	return objectPath(class, id) + "/references/" + url.PathEscape(property)
}

func referenceQuery(ref models.Reference, opts []CallOption) url.Values {
	co := applyOptions(opts)
	if co.tenant == "" {
		co.tenant = ref.Tenant
	}
	return co.query(paramConsistency, paramTenant)
}

// ReferenceAdd appends ref.ToID to the reference property of the source
// object.
func (o *Objects) ReferenceAdd(ctx context.Context, ref models.Reference, opts ...CallOption) error {
	const op = "objects.reference_add"
	if err := ref.Validate(); err != nil {
		return invalid(op, err)
	}
	_, err := o.t.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   referencePath(ref.FromClass, ref.FromID, ref.Property),
		query:  referenceQuery(ref, opts),
		body:   ref.Beacon(),
	})
	return err
}

// ReferenceUpdate replaces all targets of a reference property. toClasses
// and toIDs are paired by index.
func (o *Objects) ReferenceUpdate(ctx context.Context, fromClass string, fromID strfmt.UUID, property string, toClasses []string, toIDs []strfmt.UUID, opts ...CallOption) error {
	const op = "objects.reference_update"
	if err := requireObject(op, fromClass, fromID); err != nil {
		return err
	}
	if property == "" {
		return invalid(op, errors.New("reference property is empty"))
	}
	if len(toClasses) != len(toIDs) {
		return invalid(op, fmt.Errorf("%d target classes but %d target ids", len(toClasses), len(toIDs)))
	}
	beacons := make([]models.Beacon, len(toIDs))
	for i, id := range toIDs {
		if err := models.ValidateID(id); err != nil {
			return invalid(op, fmt.Errorf("target %d: %w", i, err))
		}
		beacons[i] = models.NewBeacon(toClasses[i], id)
	}
	_, err := o.t.do(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   referencePath(fromClass, fromID, property),
		query:  applyOptions(opts).query(paramConsistency, paramTenant),
		body:   beacons,
	})
	return err
}

// ReferenceDelete removes ref.ToID from the reference property.
func (o *Objects) ReferenceDelete(ctx context.Context, ref models.Reference, opts ...CallOption) error {
	const op = "objects.reference_delete"
	if err := ref.Validate(); err != nil {
		return invalid(op, err)
	}
	_, err := o.t.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   referencePath(ref.FromClass, ref.FromID, ref.Property),
		query:  referenceQuery(ref, opts),
		body:   ref.Beacon(),
	})
	return err
}
