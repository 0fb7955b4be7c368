package graphql

import "errors"

// RawQuery sends a hand written document unchanged.
type RawQuery struct {
	query string
}

// Raw wraps a hand-written GraphQL document.
func Raw(query string) RawQuery { return RawQuery{query: query} }

// Build syntax-checks the document and returns it unchanged.
func (r RawQuery) Build() (string, error) {
	if r.query == "" {
		return "", errors.New("graphql: raw query is empty")
	}
	return r.query, nil
}
