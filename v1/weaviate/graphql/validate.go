package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Validate checks that query is a syntactically valid GraphQL document.
// It does not check the query against the server schema.
func Validate(query string) error {
	if _, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query}); err != nil {
		return fmt.Errorf("graphql: invalid query: %w", err)
	}
	return nil
}

// Render builds q and validates the result.
func Render(q Query) (string, error) {
	s, err := q.Build()
	if err != nil {
		return "", err
	}
	if err := Validate(s); err != nil {
		return "", err
	}
	return s, nil
}
