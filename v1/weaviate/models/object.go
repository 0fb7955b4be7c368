package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// ConsistencyLevel is the number of replicas that must acknowledge a read
// or write.
type ConsistencyLevel string

const (
	ConsistencyOne    ConsistencyLevel = "ONE"
	ConsistencyQuorum ConsistencyLevel = "QUORUM"
	ConsistencyAll    ConsistencyLevel = "ALL"
)

// Values accepted by the include parameter of object reads.
const (
	IncludeClassification    = "classification"
	IncludeVector            = "vector"
	IncludeFeatureProjection = "featureProjection"
	IncludeInterpretation    = "interpretation"
	IncludeNearestNeighbors  = "nearestNeighbors"
)

// Object is a data record of a class.
type Object struct {
	Class              string           `json:"class"`
	ID                 strfmt.UUID      `json:"id,omitempty"`
	Properties         Properties       `json:"properties,omitempty"`
	Vector             []float32        `json:"vector,omitempty"`
	VectorWeights      map[string]Value `json:"vectorWeights,omitempty"`
	Tenant             string           `json:"tenant,omitempty"`
	CreationTimeUnix   int64            `json:"creationTimeUnix,omitempty"`
	LastUpdateTimeUnix int64            `json:"lastUpdateTimeUnix,omitempty"`
	Additional         map[string]Value `json:"additional,omitempty"`
}

// MultiObjects is the body of GET /v1/objects.
type MultiObjects struct {
	Objects      []Object `json:"objects"`
	TotalResults int      `json:"totalResults"`
}

// NewID returns a random version 4 object id.
func NewID() strfmt.UUID {
	return strfmt.UUID(uuid.NewString())
}

// ValidateID reports whether id is a well formed UUID.
func ValidateID(id strfmt.UUID) error {
	if id == "" {
		return errors.New("id is empty")
	}
	if _, err := uuid.Parse(id.String()); err != nil {
		return fmt.Errorf("id %q is not a valid uuid: %w", id, err)
	}
	return nil
}

// ObjectBuilder assembles an Object.
//
//	obj := models.NewObject("Article").
//		WithID(models.NewID()).
//		WithProperty("title", models.String("Hello")).
//		WithVector(vec).
//		Build()
type ObjectBuilder struct {
	o Object
}

// NewObject starts an object of class.
func NewObject(class string) ObjectBuilder {
	return ObjectBuilder{o: Object{Class: class}}
}

// WithID sets the object id. Without it the server assigns one.
func (b ObjectBuilder) WithID(id strfmt.UUID) ObjectBuilder {
	b.o.ID = id
	return b
}

// WithProperty sets one property, replacing any earlier value.
func (b ObjectBuilder) WithProperty(name string, v Value) ObjectBuilder {
	b.o.Properties = setCopy(b.o.Properties, name, v)
	return b
}

// WithProperties merges props into the property bag.
func (b ObjectBuilder) WithProperties(props Properties) ObjectBuilder {
	merged := make(Properties, len(b.o.Properties)+len(props))
	for k, v := range b.o.Properties {
		merged[k] = v
	}
	for k, v := range props {
		merged[k] = v
	}
	b.o.Properties = merged
	return b
}

// WithVector supplies the vector for classes without a vectorizer.
func (b ObjectBuilder) WithVector(vector []float32) ObjectBuilder {
	b.o.Vector = cloneSlice(vector)
	return b
}

// WithTenant places the object in a tenant.
func (b ObjectBuilder) WithTenant(tenant string) ObjectBuilder {
	b.o.Tenant = tenant
	return b
}

// Build returns the object.
func (b ObjectBuilder) Build() Object {
	o := b.o
	o.Properties = cloneMap(o.Properties)
	o.Vector = cloneSlice(o.Vector)
	return o
}

// ObjectListParams are the query parameters of GET /v1/objects.
//
// Cursor pagination with After cannot be mixed with Offset or Sort and
// needs Class.
type ObjectListParams struct {
	Class   string
	Limit   *int
	Offset  *int
	After   strfmt.UUID
	Include []string
	Sort    []string
	Order   []string
	Tenant  string
}

// NewObjectListParams lists objects across all classes.
func NewObjectListParams() ObjectListParams { return ObjectListParams{} }

// WithClass lists only objects of class.
func (p ObjectListParams) WithClass(class string) ObjectListParams {
	p.Class = class
	return p
}

// WithLimit caps the page size.
func (p ObjectListParams) WithLimit(limit int) ObjectListParams {
	p.Limit = ptr(limit)
	return p
}

// WithOffset skips objects. It cannot be combined with WithAfter.
func (p ObjectListParams) WithOffset(offset int) ObjectListParams {
	p.Offset = ptr(offset)
	return p
}

// WithAfter pages by cursor. It requires WithClass.
func (p ObjectListParams) WithAfter(after strfmt.UUID) ObjectListParams {
	p.After = after
	return p
}

// WithInclude appends additional fields to return.
func (p ObjectListParams) WithInclude(include ...string) ObjectListParams {
	p.Include = appendCopy(p.Include, include...)
	return p
}

// WithSort appends sort properties. Pair each with an entry of WithOrder.
func (p ObjectListParams) WithSort(properties ...string) ObjectListParams {
	p.Sort = appendCopy(p.Sort, properties...)
	return p
}

// WithOrder appends sort directions, "asc" or "desc".
func (p ObjectListParams) WithOrder(orders ...string) ObjectListParams {
	p.Order = appendCopy(p.Order, orders...)
	return p
}

// WithTenant lists one tenant.
func (p ObjectListParams) WithTenant(tenant string) ObjectListParams {
	p.Tenant = tenant
	return p
}

// Validate rejects cursor paging combined with offset or sort, or without a class.
func (p ObjectListParams) Validate() error {
	if p.After == "" {
		return nil
	}
	if p.Offset != nil {
		return errors.New("after cannot be combined with offset")
	}
	if len(p.Sort) > 0 {
		return errors.New("after cannot be combined with sort")
	}
	if p.Class == "" {
		return errors.New("after requires class")
	}
	return nil
}

// Query encodes p as URL query parameters.
func (p ObjectListParams) Query() url.Values {
	q := url.Values{}
	if p.Class != "" {
		q.Set("class", p.Class)
	}
	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		q.Set("offset", strconv.Itoa(*p.Offset))
	}
	if p.After != "" {
		q.Set("after", p.After.String())
	}
	if len(p.Include) > 0 {
		q.Set("include", strings.Join(p.Include, ","))
	}
	if len(p.Sort) > 0 {
		q.Set("sort", strings.Join(p.Sort, ","))
	}
	if len(p.Order) > 0 {
		q.Set("order", strings.Join(p.Order, ","))
	}
	if p.Tenant != "" {
		q.Set("tenant", p.Tenant)
	}
	return q
}
