package graphql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// AggregateBuilder builds an Aggregate query against one class.
//
//	q := graphql.Aggregate("Article").
//		WithMetaCount().
//		WithFields("wordCount { mean maximum }").
//		WithGroupBy("inPublication")
type AggregateBuilder struct {
	class       string
	metaCount   bool
	fields      []string
	where       *models.Where
	groupBy     []string
	objectLimit *int
	limit       *int
	tenant      string
	search      []searchArg
}

// Aggregate starts an Aggregate query on class.
func Aggregate(class string) AggregateBuilder {
	return AggregateBuilder{class: class}
}

// WithMetaCount selects meta { count }.
func (b AggregateBuilder) WithMetaCount() AggregateBuilder {
	b.metaCount = true
	return b
}

// WithFields appends raw aggregation selections.
func (b AggregateBuilder) WithFields(fields ...string) AggregateBuilder {
	b.fields = append(append([]string(nil), b.fields...), fields...)
	return b
}

// WithWhere restricts the aggregated objects.
func (b AggregateBuilder) WithWhere(w models.Where) AggregateBuilder {
	b.where = &w
	return b
}

// WithGroupBy groups by the property path and selects groupedBy.
func (b AggregateBuilder) WithGroupBy(path ...string) AggregateBuilder {
	b.groupBy = append([]string(nil), path...)
	return b
}

// WithObjectLimit caps how many objects a near search feeds into the
// aggregation.
func (b AggregateBuilder) WithObjectLimit(n int) AggregateBuilder {
	b.objectLimit = &n
	return b
}

// WithLimit caps the number of groups returned.
func (b AggregateBuilder) WithLimit(n int) AggregateBuilder {
	b.limit = &n
	return b
}

// WithTenant aggregates over one tenant.
func (b AggregateBuilder) WithTenant(tenant string) AggregateBuilder {
	b.tenant = tenant
	return b
}

func (b AggregateBuilder) withSearch(name, value string) AggregateBuilder {
	b.search = append(append([]searchArg(nil), b.search...), searchArg{name: name, value: value})
	return b
}

// WithNearText aggregates over the objects nearest to concepts.
func (b AggregateBuilder) WithNearText(n NearText) AggregateBuilder {
	return b.withSearch("nearText", n.render())
}

// WithNearVector aggregates over the objects nearest to a vector.
func (b AggregateBuilder) WithNearVector(n NearVector) AggregateBuilder {
	return b.withSearch("nearVector", n.render())
}

// WithNearObject aggregates over the objects nearest to another object.
func (b AggregateBuilder) WithNearObject(n NearObject) AggregateBuilder {
	return b.withSearch("nearObject", n.render())
}

// WithHybrid aggregates over the results of a hybrid search.
func (b AggregateBuilder) WithHybrid(h Hybrid) AggregateBuilder {
	return b.withSearch("hybrid", h.render())
}

// Build validates the query and renders it.
func (b AggregateBuilder) Build() (string, error) {
	if b.class == "" {
		return "", errors.New("graphql: Aggregate needs a class")
	}
	if !b.metaCount && len(b.fields) == 0 && len(b.groupBy) == 0 {
		return "", fmt.Errorf("graphql: Aggregate %s selects no fields", b.class)
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
	if len(b.groupBy) > 0 {
		a.add("groupBy", quoteAll(b.groupBy))
	}
	for _, s := range b.search {
		a.add(s.name, s.value)
	}
	if b.objectLimit != nil {
		a.add("objectLimit", strconv.Itoa(*b.objectLimit))
	}
	if b.tenant != "" {
		a.add("tenant", quote(b.tenant))
	}
	if b.limit != nil {
		a.add("limit", strconv.Itoa(*b.limit))
	}

	var sb strings.Builder
	sb.WriteString("{\n  Aggregate {\n    ")
	sb.WriteString(b.class)
	sb.WriteString(a.String())
	sb.WriteString(" {\n")
	if b.metaCount {
		sb.WriteString("      meta { count }\n")
	}
	for _, f := range b.fields {
		sb.WriteString("      ")
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	if len(b.groupBy) > 0 {
		sb.WriteString("      groupedBy { value path }\n")
	}
	sb.WriteString("    }\n  }\n}")
	return sb.String(), nil
}
