package weaviate

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Schema manages classes, their properties, shards and tenants.
type Schema struct {
	t *transport
}

func classPath(class string) string {
	return "/schema/" + url.PathEscape(class)
}

func requireClass(op, class string) error {
	if class == "" {
		return invalid(op, errors.New("class name is empty"))
	}
	return nil
}

// Get returns every class.
func (s *Schema) Get(ctx context.Context) (*models.Schema, error) {
	var out models.Schema
	err := s.t.doJSON(ctx, request{op: "schema.get", method: http.MethodGet, path: "/schema"}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClass returns one class. A missing class is a *RequestError matching
// ErrNotFound.
func (s *Schema) GetClass(ctx context.Context, class string) (*models.Class, error) {
	const op = "schema.get_class"
	if err := requireClass(op, class); err != nil {
		return nil, err
	}
	var out models.Class
	if err := s.t.doJSON(ctx, request{op: op, method: http.MethodGet, path: classPath(class)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClass creates class and returns the server's version of it, with
// server side defaults filled in.
func (s *Schema) CreateClass(ctx context.Context, class models.Class) (*models.Class, error) {
	const op = "schema.create_class"
	if err := requireClass(op, class.Class); err != nil {
		return nil, err
	}
	var out models.Class
	if err := s.t.doJSON(ctx, request{op: op, method: http.MethodPost, path: "/schema", body: class}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClass replaces the mutable settings of class.Class.
func (s *Schema) UpdateClass(ctx context.Context, class models.Class) (*models.Class, error) {
	const op = "schema.update_class"
	if err := requireClass(op, class.Class); err != nil {
		return nil, err
	}
	var out models.Class
	if err := s.t.doJSON(ctx, request{op: op, method: http.MethodPut, path: classPath(class.Class), body: class}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClass removes a class and all of its objects.
func (s *Schema) DeleteClass(ctx context.Context, class string) error {
	const op = "schema.delete_class"
	if err := requireClass(op, class); err != nil {
		return err
	}
	_, err := s.t.do(ctx, request{op: op, method: http.MethodDelete, path: classPath(class)})
	return err
}

// AddProperty adds a property to an existing class.
func (s *Schema) AddProperty(ctx context.Context, class string, prop models.Property) (*models.Property, error) {
	const op = "schema.add_property"
	if err := requireClass(op, class); err != nil {
		return nil, err
	}
	var out models.Property
	req := request{op: op, method: http.MethodPost, path: classPath(class) + "/properties", body: prop}
	if err := s.t.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetShards lists the shards of class with their status.
func (s *Schema) GetShards(ctx context.Context, class string) ([]models.Shard, error) {
	const op = "schema.get_shards"
	if err := requireClass(op, class); err != nil {
		return nil, err
	}
	var out []models.Shard
	if err := s.t.doJSON(ctx, request{op: op, method: http.MethodGet, path: classPath(class) + "/shards"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateShard sets the status of one shard, e.g. back to READY after the
// server marked it READONLY.
func (s *Schema) UpdateShard(ctx context.Context, class, shard string, status models.ShardStatus) (*models.Shard, error) {
	const op = "schema.update_shard"
	if err := requireClass(op, class); err != nil {
		return nil, err
	}
	if shard == "" {
		return nil, invalid(op, errors.New("shard name is empty"))
	}
	var out models.Shard
	req := request{
		op:     op,
		method: http.MethodPut,
		path:   classPath(class) + "/shards/" + url.PathEscape(shard),
		body:   map[string]models.ShardStatus{"status": status},
	}
	if err := s.t.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out.Name = shard
	}
	return &out, nil
}

// ListTenants lists the tenants of a multi-tenant class.
func (s *Schema) ListTenants(ctx context.Context, class string) ([]models.Tenant, error) {
	const op = "schema.list_tenants"
	if err := requireClass(op, class); err != nil {
		return nil, err
	}
	var out []models.Tenant
	if err := s.t.doJSON(ctx, request{op: op, method: http.MethodGet, path: classPath(class) + "/tenants"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddTenants creates tenants on class and returns them as stored.
func (s *Schema) AddTenants(ctx context.Context, class string, tenants ...models.Tenant) ([]models.Tenant, error) {
	return s.writeTenants(ctx, "schema.add_tenants", http.MethodPost, class, tenants)
}

// UpdateTenants changes the activity status of existing tenants.
func (s *Schema) UpdateTenants(ctx context.Context, class string, tenants ...models.Tenant) ([]models.Tenant, error) {
	return s.writeTenants(ctx, "schema.update_tenants", http.MethodPut, class, tenants)
}

func (s *Schema) writeTenants(ctx context.Context, op, method, class string, tenants []models.Tenant) ([]models.Tenant, error) {
	if err := requireClass(op, class); err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, invalid(op, errors.New("no tenants given"))
	}
	var out []models.Tenant
	req := request{op: op, method: method, path: classPath(class) + "/tenants", body: tenants}
	if err := s.t.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveTenants deletes tenants and their data.
func (s *Schema) RemoveTenants(ctx context.Context, class string, names ...string) error {
	const op = "schema.remove_tenants"
	if err := requireClass(op, class); err != nil {
		return err
	}
	if len(names) == 0 {
		return invalid(op, errors.New("no tenants given"))
	}
	_, err := s.t.do(ctx, request{op: op, method: http.MethodDelete, path: classPath(class) + "/tenants", body: names})
	return err
}
