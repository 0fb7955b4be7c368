package vectordb

import (
	"errors"
	"fmt"
	"time"
)

// Condition is one predicate on a payload field. The concrete types are
// Match, MatchAny, MatchExcept, NumericRange, TimeRange and IsNull.
type Condition interface {
	Kind() string
	field() string
}

// FilterSet combines conditions. An entry matches when all Must
// conditions hold, at least one Should condition holds (if any are
// given) and no MustNot condition holds.
type FilterSet struct {
	Must    []Condition `json:"must,omitempty"`
	Should  []Condition `json:"should,omitempty"`
	MustNot []Condition `json:"mustNot,omitempty"`
}

// Empty reports whether the set has no conditions at all.
func (fs *FilterSet) Empty() bool {
	return fs == nil || len(fs.Must)+len(fs.Should)+len(fs.MustNot) == 0
}

// Validate reports conditions without a field, ranges without a bound and
// lists mixing value types.
func (fs *FilterSet) Validate() error {
	if fs == nil {
		return nil
	}
	clauses := []struct {
		name  string
		conds []Condition
	}{{"must", fs.Must}, {"should", fs.Should}, {"mustNot", fs.MustNot}}
	for _, clause := range clauses {
		for i, c := range clause.conds {
			if err := validateCondition(c); err != nil {
				return fmt.Errorf("vectordb: %s[%d]: %w", clause.name, i, err)
			}
		}
	}
	return nil
}

func validateCondition(c Condition) error {
	if c == nil || isNilCondition(c) {
		return errors.New("nil condition")
	}
	if c.field() == "" {
		return fmt.Errorf("%s condition has no field", c.Kind())
	}
	switch c := c.(type) {
	case *Match:
		if _, err := scalarKind(c.Value); err != nil {
			return err
		}
	case *MatchAny:
		return validateValues(c.Values)
	case *MatchExcept:
		return validateValues(c.Values)
	case *NumericRange:
		if c.Gt == nil && c.Gte == nil && c.Lt == nil && c.Lte == nil {
			return fmt.Errorf("range on %s has no bound", c.Field)
		}
	case *TimeRange:
		if c.After == nil && c.AtOrAfter == nil && c.Before == nil && c.AtOrBefore == nil {
			return fmt.Errorf("time range on %s has no bound", c.Field)
		}
	}
	return nil
}

func isNilCondition(c Condition) bool {
	switch c := c.(type) {
	case *Match:
		return c == nil
	case *MatchAny:
		return c == nil
	case *MatchExcept:
		return c == nil
	case *NumericRange:
		return c == nil
	case *TimeRange:
		return c == nil
	case *IsNull:
		return c == nil
	}
	return false
}

func validateValues(values []any) error {
	if len(values) == 0 {
		return errors.New("value list is empty")
	}
	_, err := ValuesKind(values)
	return err
}

// ValuesKind returns "string", "int", "number" or "bool" for a list whose
// elements all share that kind. Ints and floats mixed together are
// "number".
func ValuesKind(values []any) (string, error) {
	var kind string
	for i, v := range values {
		k, err := scalarKind(v)
		if err != nil {
			return "", fmt.Errorf("value %d: %w", i, err)
		}
		switch {
		case kind == "" || kind == k:
			kind = k
		case (kind == "int" && k == "number") || (kind == "number" && k == "int"):
			kind = "number"
		default:
			return "", fmt.Errorf("value %d: mixed value types %s and %s", i, kind, k)
		}
	}
	return kind, nil
}

func scalarKind(v any) (string, error) {
	switch v.(type) {
	case string:
		return "string", nil
	case int, int32, int64:
		return "int", nil
	case float32, float64:
		return "number", nil
	case bool:
		return "bool", nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}

// Match holds when Field equals Value.
type Match struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// MatchAny holds when Field equals one of Values, or for array fields
// when the arrays share an element.
type MatchAny struct {
	Field  string `json:"field"`
	Values []any  `json:"values"`
}

// MatchExcept holds when Field equals none of Values.
type MatchExcept struct {
	Field  string `json:"field"`
	Values []any  `json:"values"`
}

// NumericRange bounds a numeric field. Nil bounds are open.
type NumericRange struct {
	Field string   `json:"field"`
	Gt    *float64 `json:"gt,omitempty"`
	Gte   *float64 `json:"gte,omitempty"`
	Lt    *float64 `json:"lt,omitempty"`
	Lte   *float64 `json:"lte,omitempty"`
}

// TimeRange bounds a date field.
type TimeRange struct {
	Field      string     `json:"field"`
	After      *time.Time `json:"after,omitempty"`
	AtOrAfter  *time.Time `json:"atOrAfter,omitempty"`
	Before     *time.Time `json:"before,omitempty"`
	AtOrBefore *time.Time `json:"atOrBefore,omitempty"`
}

// IsNull holds when Field is null or missing.
type IsNull struct {
	Field string `json:"field"`
}

// Kind names the condition type on the wire.
func (c *Match) Kind() string        { return "match" }
func (c *MatchAny) Kind() string     { return "matchAny" }
func (c *MatchExcept) Kind() string  { return "matchExcept" }
func (c *NumericRange) Kind() string { return "numericRange" }
func (c *TimeRange) Kind() string    { return "timeRange" }
func (c *IsNull) Kind() string       { return "isNull" }

func (c *Match) field() string        { return c.Field }
func (c *MatchAny) field() string     { return c.Field }
func (c *MatchExcept) field() string  { return c.Field }
func (c *NumericRange) field() string { return c.Field }
func (c *TimeRange) field() string    { return c.Field }
func (c *IsNull) field() string       { return c.Field }
