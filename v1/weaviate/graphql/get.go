package graphql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Query is anything that renders to a GraphQL document.
type Query interface {
	Build() (string, error)
}

// ErrConflictingSearch is returned by Build when more than one search
// operator is set.
var ErrConflictingSearch = errors.New("graphql: only one search operator may be set")

// GetBuilder builds a Get query against one class.
//
//	q := graphql.Get("Article", "title", "url").
//		WithAdditional("id", "distance").
//		WithNearVector(graphql.NewNearVector(vec).WithDistance(0.3)).
//		WithWhere(models.WherePath("wordCount").GreaterThan(100)).
//		WithLimit(10)
type GetBuilder struct {
	class       string
	properties  []string
	additional  []string
	where       *models.Where
	limit       *int
	offset      *int
	autocut     *int
	after       strfmt.UUID
	tenant      string
	consistency models.ConsistencyLevel
	sort        []Sort
	groupBy     *GroupBy
	search      []searchArg
}

type searchArg struct {
	name  string
	value string
}

// Get starts a Get query on class selecting properties.
func Get(class string, properties ...string) GetBuilder {
	return GetBuilder{class: class, properties: append([]string(nil), properties...)}
}

// WithProperties appends selected properties. Nested selections such as
// "inPublication { ... on Publication { name } }" are passed through.
func (b GetBuilder) WithProperties(properties ...string) GetBuilder {
	b.properties = append(append([]string(nil), b.properties...), properties...)
	return b
}

// WithAdditional appends fields of the _additional selection, such as id,
// distance, certainty, score or vector.
func (b GetBuilder) WithAdditional(fields ...string) GetBuilder {
	b.additional = append(append([]string(nil), b.additional...), fields...)
	return b
}

// WithWhere filters the returned objects.
func (b GetBuilder) WithWhere(w models.Where) GetBuilder {
	b.where = &w
	return b
}

// WithLimit caps the number of objects.
func (b GetBuilder) WithLimit(limit int) GetBuilder {
	b.limit = &limit
	return b
}

// WithOffset skips the first offset objects.
func (b GetBuilder) WithOffset(offset int) GetBuilder {
	b.offset = &offset
	return b
}

// WithAutocut cuts the results after that many jumps in distance.
func (b GetBuilder) WithAutocut(autocut int) GetBuilder {
	b.autocut = &autocut
	return b
}

// WithAfter pages through a class starting after id.
func (b GetBuilder) WithAfter(after strfmt.UUID) GetBuilder {
	b.after = after
	return b
}

// WithTenant queries one tenant.
func (b GetBuilder) WithTenant(tenant string) GetBuilder {
	b.tenant = tenant
	return b
}

// WithConsistencyLevel sets the read consistency.
func (b GetBuilder) WithConsistencyLevel(level models.ConsistencyLevel) GetBuilder {
	b.consistency = level
	return b
}

// WithSort appends sort criteria.
func (b GetBuilder) WithSort(sorts ...Sort) GetBuilder {
	b.sort = append(append([]Sort(nil), b.sort...), sorts...)
	return b
}

// WithGroupBy groups the results by a property.
func (b GetBuilder) WithGroupBy(g GroupBy) GetBuilder {
	b.groupBy = &g
	return b
}

func (b GetBuilder) withSearch(name, value string) GetBuilder {
	b.search = append(append([]searchArg(nil), b.search...), searchArg{name: name, value: value})
	return b
}

// The search operators below are mutually exclusive; Build rejects a query
// with more than one.
func (b GetBuilder) WithNearText(n NearText) GetBuilder     { return b.withSearch("nearText", n.render()) }
func (b GetBuilder) WithNearVector(n NearVector) GetBuilder { return b.withSearch("nearVector", n.render()) }
func (b GetBuilder) WithNearObject(n NearObject) GetBuilder { return b.withSearch("nearObject", n.render()) }
func (b GetBuilder) WithBM25(q BM25) GetBuilder             { return b.withSearch("bm25", q.render()) }
func (b GetBuilder) WithHybrid(h Hybrid) GetBuilder         { return b.withSearch("hybrid", h.render()) }
func (b GetBuilder) WithAsk(q Ask) GetBuilder               { return b.withSearch("ask", q.render()) }

// Build renders the query. It fails when the class is empty, nothing is
// selected, more than one search operator is set, or the where filter is
// malformed.
func (b GetBuilder) Build() (string, error) {
	if b.class == "" {
		return "", errors.New("graphql: Get needs a class")
	}
	if len(b.properties) == 0 && len(b.additional) == 0 {
		return "", fmt.Errorf("graphql: Get %s selects no fields", b.class)
	}
	if len(b.search) > 1 {
		return "", fmt.Errorf("%w: %s and %s", ErrConflictingSearch, b.search[0].name, b.search[1].name)
	}

	var a args
	if b.where != nil {
		if err := b.where.Validate(); err != nil {
			return "", fmt.Errorf("graphql: where: %w", err)
		}
		a.add("where", b.where.GraphQL())
	}
	if b.limit != nil {
		a.add("limit", strconv.Itoa(*b.limit))
	}
	if b.offset != nil {
		a.add("offset", strconv.Itoa(*b.offset))
	}
	for _, s := range b.search {
		a.add(s.name, s.value)
	}
	if b.groupBy != nil {
		a.add("groupBy", b.groupBy.render())
	}
	if b.after != "" {
		a.add("after", quote(b.after.String()))
	}
	if b.tenant != "" {
		a.add("tenant", quote(b.tenant))
	}
	if b.consistency != "" {
		a.add("consistencyLevel", string(b.consistency))
	}
	if b.autocut != nil {
		a.add("autocut", strconv.Itoa(*b.autocut))
	}
	if len(b.sort) > 0 {
		a.add("sort", renderSort(b.sort))
	}

	var sb strings.Builder
	sb.WriteString("{\n  Get {\n    ")
	sb.WriteString(b.class)
	sb.WriteString(a.String())
	sb.WriteString(" {\n")
	for _, p := range b.properties {
		sb.WriteString("      ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	if len(b.additional) > 0 {
		sb.WriteString("      _additional { ")
		sb.WriteString(strings.Join(b.additional, " "))
		sb.WriteString(" }\n")
	}
	sb.WriteString("    }\n  }\n}")
	return sb.String(), nil
}
