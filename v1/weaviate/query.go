package weaviate

import (
	"context"
	"net/http"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/graphql"
)

// Query runs GraphQL documents. Documents are syntax checked before they
// are sent. A response with an errors array is returned as is; call
// Response.Err to turn it into an error.
type Query struct {
	t *transport
}

// Do renders q and posts it to /graphql.
func (q *Query) Do(ctx context.Context, query graphql.Query) (*graphql.Response, error) {
	return q.do(ctx, "query.do", query)
}

// Get runs a Get query.
func (q *Query) Get(ctx context.Context, b graphql.GetBuilder) (*graphql.Response, error) {
	return q.do(ctx, "query.get", b)
}

// Aggregate runs an Aggregate query.
func (q *Query) Aggregate(ctx context.Context, b graphql.AggregateBuilder) (*graphql.Response, error) {
	return q.do(ctx, "query.aggregate", b)
}

// Explore runs an Explore query across all classes.
func (q *Query) Explore(ctx context.Context, b graphql.ExploreBuilder) (*graphql.Response, error) {
	return q.do(ctx, "query.explore", b)
}

// Raw sends a hand written document.
func (q *Query) Raw(ctx context.Context, document string) (*graphql.Response, error) {
	return q.do(ctx, "query.raw", graphql.Raw(document))
}

func (q *Query) do(ctx context.Context, op string, query graphql.Query) (*graphql.Response, error) {
	document, err := graphql.Render(query)
	if err != nil {
		return nil, invalid(op, err)
	}
	var out graphql.Response
	r := request{op: op, method: http.MethodPost, path: "/graphql", body: graphql.Request{Query: document}}
	if err := q.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
