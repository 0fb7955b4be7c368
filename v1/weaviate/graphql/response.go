package graphql

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Request is the body POSTed to /v1/graphql.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the GraphQL envelope. Data is keyed by the top level
// operation: Get, Aggregate or Explore.
type Response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors gqlerror.List              `json:"errors,omitempty"`
}

// QueryError carries the errors array of a GraphQL response.
type QueryError struct {
	Errors gqlerror.List
}

func (e *QueryError) Error() string {
	return "graphql: " + e.Errors.Error()
}

// Err returns a *QueryError when the response carries errors. Partial data
// stays available on r.
func (r *Response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &QueryError{Errors: r.Errors}
}

// Object is one result of a Get query.
type Object struct {
	Properties models.Properties
	Additional *Additional
}

// Additional holds the _additional fields of a result. Fields that have no
// typed slot stay in Other.
type Additional struct {
	ID                 strfmt.UUID             `json:"id,omitempty"`
	Distance           *float64                `json:"distance,omitempty"`
	Certainty          *float64                `json:"certainty,omitempty"`
	Score              json.Number             `json:"score,omitempty"`
	ExplainScore       string                  `json:"explainScore,omitempty"`
	Vector             []float32               `json:"vector,omitempty"`
	CreationTimeUnix   string                  `json:"creationTimeUnix,omitempty"`
	LastUpdateTimeUnix string                  `json:"lastUpdateTimeUnix,omitempty"`
	Other              map[string]models.Value `json:"-"`
}

func (o *Object) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Object{Properties: make(models.Properties, len(raw))}
	for k, v := range raw {
		if k == "_additional" {
			add, err := decodeAdditional(v)
			if err != nil {
				return fmt.Errorf("_additional: %w", err)
			}
			o.Additional = add
			continue
		}
		var val models.Value
		if err := json.Unmarshal(v, &val); err != nil {
			return fmt.Errorf("property %q: %w", k, err)
		}
		o.Properties[k] = val
	}
	return nil
}

func decodeAdditional(data json.RawMessage) (*Additional, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var add Additional
	if err := json.Unmarshal(data, &add); err != nil {
		return nil, err
	}
	var all map[string]models.Value
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, known := range []string{"id", "distance", "certainty", "score", "explainScore", "vector", "creationTimeUnix", "lastUpdateTimeUnix"} {
		delete(all, known)
	}
	if len(all) > 0 {
		add.Other = all
	}
	return &add, nil
}

// ExploreResult is one result of an Explore query.
type ExploreResult struct {
	Beacon    string   `json:"beacon"`
	ClassName string   `json:"className"`
	Certainty *float64 `json:"certainty,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
}

func (r *Response) section(op string) (map[string]json.RawMessage, error) {
	raw, ok := r.Data[op]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var classes map[string]json.RawMessage
	if err := json.Unmarshal(raw, &classes); err != nil {
		return nil, fmt.Errorf("graphql: decode %s: %w", op, err)
	}
	return classes, nil
}

// GetObjects decodes the Get results of class.
func (r *Response) GetObjects(class string) ([]Object, error) {
	classes, err := r.section("Get")
	if err != nil {
		return nil, err
	}
	raw, ok := classes[class]
	if !ok {
		return nil, nil
	}
	var objs []Object
	if err := json.Unmarshal(raw, &objs); err != nil {
		return nil, fmt.Errorf("graphql: decode Get %s: %w", class, err)
	}
	return objs, nil
}

// AggregateGroups decodes the Aggregate results of class. Without groupBy
// there is exactly one group.
func (r *Response) AggregateGroups(class string) ([]map[string]models.Value, error) {
	classes, err := r.section("Aggregate")
	if err != nil {
		return nil, err
	}
	raw, ok := classes[class]
	if !ok {
		return nil, nil
	}
	var groups []map[string]models.Value
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("graphql: decode Aggregate %s: %w", class, err)
	}
	return groups, nil
}

// MetaCount reads meta { count } from the first Aggregate group of class.
func (r *Response) MetaCount(class string) (int64, error) {
	groups, err := r.AggregateGroups(class)
	if err != nil {
		return 0, err
	}
	if len(groups) == 0 {
		return 0, fmt.Errorf("graphql: no Aggregate result for %s", class)
	}
	count, ok := groups[0]["meta"].Get("count")
	if !ok {
		return 0, fmt.Errorf("graphql: Aggregate %s has no meta count", class)
	}
	n, ok := count.AsInt()
	if !ok {
		return 0, fmt.Errorf("graphql: Aggregate %s meta count is %s", class, count)
	}
	return n, nil
}

// ExploreResults decodes data.Explore.
func (r *Response) ExploreResults() ([]ExploreResult, error) {
	raw, ok := r.Data["Explore"]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var out []ExploreResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("graphql: decode Explore: %w", err)
	}
	return out, nil
}
