package graphql

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultExploreFields are selected when ExploreBuilder has no fields.
var DefaultExploreFields = []string{"beacon", "certainty", "className"}

// ExploreBuilder builds a cross-class Explore query. Exactly one of
// nearText and nearVector must be set.
type ExploreBuilder struct {
	fields []string
	limit  *int
	search []searchArg
}

// Explore starts an Explore query returning fields.
func Explore(fields ...string) ExploreBuilder {
	return ExploreBuilder{fields: append([]string(nil), fields...)}
}

// WithLimit caps the number of results.
func (b ExploreBuilder) WithLimit(n int) ExploreBuilder {
	b.limit = &n
	return b
}

// WithNearText searches by concepts.
func (b ExploreBuilder) WithNearText(n NearText) ExploreBuilder {
	b.search = append(append([]searchArg(nil), b.search...), searchArg{name: "nearText", value: n.render()})
	return b
}

// WithNearVector searches by vector.
func (b ExploreBuilder) WithNearVector(n NearVector) ExploreBuilder {
	b.search = append(append([]searchArg(nil), b.search...), searchArg{name: "nearVector", value: n.render()})
	return b
}

// Build validates the query and renders it.
func (b ExploreBuilder) Build() (string, error) {
	switch len(b.search) {
	case 0:
		return "", errors.New("graphql: Explore needs nearText or nearVector")
	case 1:
	default:
		return "", ErrConflictingSearch
	}

	var a args
	if b.limit != nil {
		a.add("limit", strconv.Itoa(*b.limit))
	}
	a.add(b.search[0].name, b.search[0].value)

	fields := b.fields
	if len(fields) == 0 {
		fields = DefaultExploreFields
	}

	var sb strings.Builder
	sb.WriteString("{\n  Explore")
	sb.WriteString(a.String())
	sb.WriteString(" {\n    ")
	sb.WriteString(strings.Join(fields, " "))
	sb.WriteString("\n  }\n}")
	return sb.String(), nil
}
