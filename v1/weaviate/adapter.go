package weaviate

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/weaviate/v1/vectordb"
	"github.com/Aleph-Alpha/weaviate/v1/weaviate/graphql"
	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// searchConcurrency bounds the GraphQL requests a single Search runs in
// parallel.
const searchConcurrency = 4

// Adapter implements vectordb.Service. Collections are classes without a
// vectorizer; vectors are always supplied by the caller.
type Adapter struct {
	client *Client
}

var _ vectordb.Service = (*Adapter)(nil)

// NewAdapter exposes client as a vectordb.Service.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// Search runs the requests concurrently. A failed request leaves a nil
// slot in the results and its error is joined into the returned error.
func (a *Adapter) Search(ctx context.Context, requests ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
	results := make([][]vectordb.SearchResult, len(requests))
	errs := make([]error, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)
	for i, req := range requests {
		g.Go(func() error {
			res, err := a.search(ctx, req)
			if err != nil {
				errs[i] = fmt.Errorf("search %d on %s: %w", i, req.Collection, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results, errors.Join(errs...)
}

func (a *Adapter) search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	const op = "adapter.search"
	if req.Collection == "" {
		return nil, invalid(op, errors.New("collection is empty"))
	}
	if len(req.Vector) == 0 {
		return nil, invalid(op, errors.New("query vector is empty"))
	}
	if req.TopK <= 0 {
		return nil, invalid(op, fmt.Errorf("topK must be positive, got %d", req.TopK))
	}
	where, err := whereFromFilters(req.Filters)
	if err != nil {
		return nil, invalid(op, err)
	}

	class, err := a.client.Schema.GetClass(ctx, req.Collection)
	if err != nil {
		return nil, err
	}

	additional := []string{"id", "distance"}
	if req.WithVector {
		additional = append(additional, "vector")
	}
	q := graphql.Get(req.Collection, payloadProperties(class)...).
		WithAdditional(additional...).
		WithNearVector(graphql.NewNearVector(req.Vector)).
		WithLimit(req.TopK)
	if where != nil {
		q = q.WithWhere(*where)
	}

	resp, err := a.client.Query.Get(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	objs, err := resp.GetObjects(req.Collection)
	if err != nil {
		return nil, err
	}

	out := make([]vectordb.SearchResult, 0, len(objs))
	for _, obj := range objs {
		res := vectordb.SearchResult{
			Payload:    obj.Properties.Map(),
			Collection: req.Collection,
		}
		if add := obj.Additional; add != nil {
			res.ID = add.ID.String()
			res.Vector = add.Vector
			if add.Distance != nil {
				res.Distance = float32(*add.Distance)
				res.Score = 1 - res.Distance
			}
		}
		out = append(out, res)
	}
	return out, nil
}

// payloadProperties lists the scalar properties of class. References need
// a nested selection and are left out.
func payloadProperties(class *models.Class) []string {
	props := make([]string, 0, len(class.Properties))
	for _, p := range class.Properties {
		if p.IsReference() || isNested(p) {
			continue
		}
		props = append(props, p.Name)
	}
	return props
}

func isNested(p models.Property) bool {
	for _, dt := range p.DataType {
		if dt == models.DataTypeObject || dt == models.DataTypeObjectArray || dt == models.DataTypeGeoCoordinates || dt == models.DataTypePhoneNumber {
			return true
		}
	}
	return false
}

// Insert writes inputs in one batch. Items the server rejects are reported
// together in the returned error.
func (a *Adapter) Insert(ctx context.Context, collection string, inputs []vectordb.EmbeddingInput) error {
	const op = "adapter.insert"
	if len(inputs) == 0 {
		return nil
	}
	objs := make([]models.Object, len(inputs))
	for i, in := range inputs {
		props, err := models.PropertiesOf(in.Payload)
		if err != nil {
			return invalid(op, fmt.Errorf("input %d: %w", i, err))
		}
		id := strfmt.UUID(in.ID)
		if id == "" {
			id = models.NewID()
		}
		objs[i] = models.NewObject(collection).
			WithID(id).
			WithProperties(props).
			WithVector(in.Vector).
			Build()
	}

	results, err := a.client.Batch.ObjectsAdd(ctx, models.NewBatchObjects(objs...))
	if err != nil {
		return err
	}
	var errs []error
	for _, r := range results {
		if r.Result.Failed() {
			msg := "rejected"
			if r.Result.Errors != nil {
				msg = r.Result.Errors.String()
			}
			errs = append(errs, fmt.Errorf("object %s: %s", r.ID, msg))
		}
	}
	return errors.Join(errs...)
}

// Delete removes objects by id with a batch delete on the id property.
func (a *Adapter) Delete(ctx context.Context, collection string, ids []string) error {
	const op = "adapter.delete"
	if len(ids) == 0 {
		return nil
	}
	for i, id := range ids {
		if err := models.ValidateID(strfmt.UUID(id)); err != nil {
			return invalid(op, fmt.Errorf("id %d: %w", i, err))
		}
	}
	where := models.WherePath("id").ContainsAny(append([]string(nil), ids...))
	req := models.NewBatchDelete(collection, where).WithOutput(models.DeleteOutputMinimal)
	resp, err := a.client.Batch.ObjectsDelete(ctx, req)
	if err != nil {
		return err
	}
	if resp.Results.Failed > 0 {
		return fmt.Errorf("weaviate: %d of %d deletes failed in %s", resp.Results.Failed, resp.Results.Matches, collection)
	}
	return nil
}

// EnsureCollection creates a class with no vectorizer and cosine distance
// when none exists. vectorSize is not stored; the first vector written
// fixes the dimension.
func (a *Adapter) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	_, err := a.client.Schema.GetClass(ctx, name)
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return err
	}
	class := models.NewClass(name).
		WithVectorizer(models.VectorizerNone).
		WithVectorIndexConfig(models.NewVectorIndexConfig().WithDistance(models.DistanceCosine).Build()).
		Build()
	_, err = a.client.Schema.CreateClass(ctx, class)
	return err
}

// GetCollection returns the class settings and its object count.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	class, err := a.client.Schema.GetClass(ctx, name)
	if err != nil {
		return nil, err
	}
	resp, err := a.client.Query.Aggregate(ctx, graphql.Aggregate(name).WithMetaCount())
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	count, err := resp.MetaCount(name)
	if err != nil {
		return nil, err
	}

	c := &vectordb.Collection{
		Name:            class.Class,
		Description:     class.Description,
		Vectorizer:      class.Vectorizer,
		VectorIndexType: class.VectorIndexType,
		ObjectCount:     uint64(max(count, 0)),
		MultiTenant:     class.MultiTenancyConfig != nil && class.MultiTenancyConfig.Enabled,
	}
	if class.VectorIndexConfig != nil {
		c.Distance = class.VectorIndexConfig.Distance
	}
	for _, p := range class.Properties {
		c.Properties = append(c.Properties, p.Name)
	}
	return c, nil
}

// ListCollections returns the names of all classes in the schema.
func (a *Adapter) ListCollections(ctx context.Context) ([]string, error) {
	schema, err := a.client.Schema.Get(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(schema.Classes))
	for i, c := range schema.Classes {
		names[i] = c.Class
	}
	return names, nil
}

// whereFromFilters translates fs into a Where tree. Must conditions and
// the Should and MustNot groups are ANDed together. It returns nil for an
// empty set.
func whereFromFilters(fs *vectordb.FilterSet) (*models.Where, error) {
	if fs.Empty() {
		return nil, nil
	}
	if err := fs.Validate(); err != nil {
		return nil, err
	}

	var operands []models.Where
	for _, c := range fs.Must {
		w, err := whereFromCondition(c)
		if err != nil {
			return nil, err
		}
		operands = append(operands, w)
	}
	if len(fs.Should) > 0 {
		either, err := whereGroup(fs.Should)
		if err != nil {
			return nil, err
		}
		operands = append(operands, either)
	}
	if len(fs.MustNot) > 0 {
		excluded, err := whereGroup(fs.MustNot)
		if err != nil {
			return nil, err
		}
		operands = append(operands, models.Not(excluded))
	}

	w := operands[0]
	if len(operands) > 1 {
		w = models.And(operands...)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// whereGroup ORs conds, or returns the single condition unwrapped.
func whereGroup(conds []vectordb.Condition) (models.Where, error) {
	operands := make([]models.Where, 0, len(conds))
	for _, c := range conds {
		w, err := whereFromCondition(c)
		if err != nil {
			return models.Where{}, err
		}
		operands = append(operands, w)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return models.Or(operands...), nil
}

func whereFromCondition(c vectordb.Condition) (models.Where, error) {
	switch c := c.(type) {
	case *vectordb.Match:
		return models.WherePath(c.Field).Equal(c.Value), nil
	case *vectordb.MatchAny:
		values, err := typedValues(c.Values)
		if err != nil {
			return models.Where{}, err
		}
		return models.WherePath(c.Field).ContainsAny(values), nil
	case *vectordb.MatchExcept:
		values, err := typedValues(c.Values)
		if err != nil {
			return models.Where{}, err
		}
		return models.Not(models.WherePath(c.Field).ContainsAny(values)), nil
	case *vectordb.NumericRange:
		path := models.WherePath(c.Field)
		var bounds []models.Where
		if c.Gt != nil {
			bounds = append(bounds, path.GreaterThan(*c.Gt))
		}
		if c.Gte != nil {
			bounds = append(bounds, path.GreaterThanEqual(*c.Gte))
		}
		if c.Lt != nil {
			bounds = append(bounds, path.LessThan(*c.Lt))
		}
		if c.Lte != nil {
			bounds = append(bounds, path.LessThanEqual(*c.Lte))
		}
		return joinBounds(bounds), nil
	case *vectordb.TimeRange:
		path := models.WherePath(c.Field)
		var bounds []models.Where
		if c.After != nil {
			bounds = append(bounds, path.GreaterThan(*c.After))
		}
		if c.AtOrAfter != nil {
			bounds = append(bounds, path.GreaterThanEqual(*c.AtOrAfter))
		}
		if c.Before != nil {
			bounds = append(bounds, path.LessThan(*c.Before))
		}
		if c.AtOrBefore != nil {
			bounds = append(bounds, path.LessThanEqual(*c.AtOrBefore))
		}
		return joinBounds(bounds), nil
	case *vectordb.IsNull:
		return models.WherePath(c.Field).IsNull(true), nil
	}
	return models.Where{}, fmt.Errorf("unsupported condition %T", c)
}

func joinBounds(bounds []models.Where) models.Where {
	if len(bounds) == 1 {
		return bounds[0]
	}
	return models.And(bounds...)
}

// typedValues turns a homogeneous []any into the typed slice a Where
// leaf accepts.
func typedValues(values []any) (any, error) {
	kind, err := vectordb.ValuesKind(values)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "string":
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.(string)
		}
		return out, nil
	case "int":
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = toInt64(v)
		}
		return out, nil
	case "number":
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = toFloat64(v)
		}
		return out, nil
	case "bool":
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.(bool)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value kind %q", kind)
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return float64(toInt64(v))
}
