package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// Operator is a where filter operator.
type Operator string

const (
	OperatorAnd              Operator = "And"
	OperatorOr               Operator = "Or"
	OperatorNot              Operator = "Not"
	OperatorEqual            Operator = "Equal"
	OperatorNotEqual         Operator = "NotEqual"
	OperatorGreaterThan      Operator = "GreaterThan"
	OperatorGreaterThanEqual Operator = "GreaterThanEqual"
	OperatorLessThan         Operator = "LessThan"
	OperatorLessThanEqual    Operator = "LessThanEqual"
	OperatorLike             Operator = "Like"
	OperatorWithinGeoRange   Operator = "WithinGeoRange"
	OperatorIsNull           Operator = "IsNull"
	OperatorContainsAny      Operator = "ContainsAny"
	OperatorContainsAll      Operator = "ContainsAll"
)

// Where is a filter tree. Leaves compare the property at Path with exactly
// one typed value; And, Or and Not combine Operands.
type Where struct {
	Operator Operator `json:"operator"`
	Path     []string `json:"path,omitempty"`
	Operands []Where  `json:"operands,omitempty"`

	ValueText         *string   `json:"valueText,omitempty"`
	ValueInt          *int64    `json:"valueInt,omitempty"`
	ValueNumber       *float64  `json:"valueNumber,omitempty"`
	ValueBoolean      *bool     `json:"valueBoolean,omitempty"`
	ValueDate         *string   `json:"valueDate,omitempty"`
	ValueTextArray    []string  `json:"valueTextArray,omitempty"`
	ValueIntArray     []int64   `json:"valueIntArray,omitempty"`
	ValueNumberArray  []float64 `json:"valueNumberArray,omitempty"`
	ValueBooleanArray []bool    `json:"valueBooleanArray,omitempty"`
	ValueDateArray    []string  `json:"valueDateArray,omitempty"`
	ValueGeoRange     *GeoRange `json:"valueGeoRange,omitempty"`

	err error
}

type GeoRange struct {
	GeoCoordinates GeoCoordinate `json:"geoCoordinates"`
	Distance       GeoDistance   `json:"distance"`
}

type GeoCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeoDistance struct {
	Max float64 `json:"max"`
}

// WhereBuilder starts a leaf filter on a property path. Cross-reference
// paths alternate property and class names, e.g.
// WherePath("inPublication", "Publication", "name").
type WhereBuilder struct {
	path []string
}

// WherePath starts a condition on the property at path.
func WherePath(path ...string) WhereBuilder {
	return WhereBuilder{path: appendCopy[string](nil, path...)}
}

func (b WhereBuilder) leaf(op Operator, value any) Where {
	w := Where{Operator: op, Path: cloneSlice(b.path)}
	if err := w.setValue(value); err != nil {
		w.err = fmt.Errorf("%s on %s: %w", op, strings.Join(b.path, "."), err)
	}
	return w
}

// Comparison operators. The value type selects the valueX field.
func (b WhereBuilder) Equal(value any) Where            { return b.leaf(OperatorEqual, value) }
func (b WhereBuilder) NotEqual(value any) Where         { return b.leaf(OperatorNotEqual, value) }
func (b WhereBuilder) GreaterThan(value any) Where      { return b.leaf(OperatorGreaterThan, value) }
func (b WhereBuilder) GreaterThanEqual(value any) Where { return b.leaf(OperatorGreaterThanEqual, value) }
func (b WhereBuilder) LessThan(value any) Where         { return b.leaf(OperatorLessThan, value) }
func (b WhereBuilder) LessThanEqual(value any) Where    { return b.leaf(OperatorLessThanEqual, value) }

// Like matches text with ? and * wildcards.
func (b WhereBuilder) Like(pattern string) Where { return b.leaf(OperatorLike, pattern) }

// IsNull matches null or missing values when isNull is true.
func (b WhereBuilder) IsNull(isNull bool) Where { return b.leaf(OperatorIsNull, isNull) }

// ContainsAny takes a slice, e.g. []string or []int64.
func (b WhereBuilder) ContainsAny(values any) Where { return b.leaf(OperatorContainsAny, values) }

// ContainsAll matches array properties holding all of values.
func (b WhereBuilder) ContainsAll(values any) Where { return b.leaf(OperatorContainsAll, values) }

// WithinGeoRange matches geoCoordinates within maxMeters of a point.
func (b WhereBuilder) WithinGeoRange(latitude, longitude, maxMeters float64) Where {
	return Where{
		Operator: OperatorWithinGeoRange,
		Path:     cloneSlice(b.path),
		ValueGeoRange: &GeoRange{
			GeoCoordinates: GeoCoordinate{Latitude: latitude, Longitude: longitude},
			Distance:       GeoDistance{Max: maxMeters},
		},
	}
}

// And holds when all operands hold.
func And(operands ...Where) Where {
	return Where{Operator: OperatorAnd, Operands: appendCopy[Where](nil, operands...)}
}

// Or holds when any operand holds.
func Or(operands ...Where) Where {
	return Where{Operator: OperatorOr, Operands: appendCopy[Where](nil, operands...)}
}

// Not negates operand.
func Not(operand Where) Where {
	return Where{Operator: OperatorNot, Operands: []Where{operand}}
}

func formatDate(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func (w *Where) setValue(value any) error {
	switch v := value.(type) {
	case string:
		w.ValueText = &v
	case strfmt.UUID:
		w.ValueText = ptr(v.String())
	case int:
		w.ValueInt = ptr(int64(v))
	case int32:
		w.ValueInt = ptr(int64(v))
	case int64:
		w.ValueInt = &v
	case float32:
		w.ValueNumber = ptr(float64(v))
	case float64:
		w.ValueNumber = &v
	case bool:
		w.ValueBoolean = &v
	case time.Time:
		w.ValueDate = ptr(formatDate(v))
	case strfmt.DateTime:
		w.ValueDate = ptr(formatDate(time.Time(v)))
	case []string:
		w.ValueTextArray = cloneSlice(v)
	case []int:
		w.ValueIntArray = make([]int64, len(v))
		for i, n := range v {
			w.ValueIntArray[i] = int64(n)
		}
	case []int64:
		w.ValueIntArray = cloneSlice(v)
	case []float64:
		w.ValueNumberArray = cloneSlice(v)
	case []bool:
		w.ValueBooleanArray = cloneSlice(v)
	case []time.Time:
		w.ValueDateArray = make([]string, len(v))
		for i, t := range v {
			w.ValueDateArray[i] = formatDate(t)
		}
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
	return nil
}

// Validate reports malformed filters: unsupported value types, leaves
// without a path or value, and empty or oversized operand lists.
func (w Where) Validate() error {
	if w.err != nil {
		return w.err
	}
	switch w.Operator {
	case OperatorAnd, OperatorOr:
		if len(w.Operands) == 0 {
			return fmt.Errorf("%s needs at least one operand", w.Operator)
		}
	case OperatorNot:
		if len(w.Operands) != 1 {
			return errors.New("Not needs exactly one operand")
		}
	case "":
		return errors.New("where filter has no operator")
	default:
		if len(w.Path) == 0 {
			return fmt.Errorf("%s needs a path", w.Operator)
		}
		if w.valueCount() != 1 {
			return fmt.Errorf("%s on %s needs exactly one value", w.Operator, strings.Join(w.Path, "."))
		}
		return nil
	}
	for i, op := range w.Operands {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operand %d: %w", i, err)
		}
	}
	return nil
}

func (w Where) valueCount() int {
	n := 0
	for _, set := range []bool{
		w.ValueText != nil, w.ValueInt != nil, w.ValueNumber != nil,
		w.ValueBoolean != nil, w.ValueDate != nil, w.ValueTextArray != nil,
		w.ValueIntArray != nil, w.ValueNumberArray != nil,
		w.ValueBooleanArray != nil, w.ValueDateArray != nil, w.ValueGeoRange != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// GraphQL renders w as a GraphQL input object for the where argument.
func (w Where) GraphQL() string {
	var sb strings.Builder
	w.writeGraphQL(&sb)
	return sb.String()
}

func (w Where) writeGraphQL(sb *strings.Builder) {
	sb.WriteString("{operator: ")
	sb.WriteString(string(w.Operator))
	if len(w.Path) > 0 {
		sb.WriteString(", path: ")
		writeGraphQLStrings(sb, w.Path)
	}
	if len(w.Operands) > 0 {
		sb.WriteString(", operands: [")
		for i, op := range w.Operands {
			if i > 0 {
				sb.WriteString(", ")
			}
			op.writeGraphQL(sb)
		}
		sb.WriteString("]")
	}

	switch {
	case w.ValueText != nil:
		sb.WriteString(", valueText: ")
		sb.WriteString(GraphQLString(*w.ValueText))
	case w.ValueInt != nil:
		sb.WriteString(", valueInt: ")
		sb.WriteString(strconv.FormatInt(*w.ValueInt, 10))
	case w.ValueNumber != nil:
		sb.WriteString(", valueNumber: ")
		sb.WriteString(GraphQLFloat(*w.ValueNumber))
	case w.ValueBoolean != nil:
		sb.WriteString(", valueBoolean: ")
		sb.WriteString(strconv.FormatBool(*w.ValueBoolean))
	case w.ValueDate != nil:
		sb.WriteString(", valueDate: ")
		sb.WriteString(GraphQLString(*w.ValueDate))
	case w.ValueTextArray != nil:
		sb.WriteString(", valueTextArray: ")
		writeGraphQLStrings(sb, w.ValueTextArray)
	case w.ValueIntArray != nil:
		sb.WriteString(", valueIntArray: [")
		for i, n := range w.ValueIntArray {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(n, 10))
		}
		sb.WriteString("]")
	case w.ValueNumberArray != nil:
		sb.WriteString(", valueNumberArray: [")
		for i, f := range w.ValueNumberArray {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(GraphQLFloat(f))
		}
		sb.WriteString("]")
	case w.ValueBooleanArray != nil:
		sb.WriteString(", valueBooleanArray: [")
		for i, b := range w.ValueBooleanArray {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatBool(b))
		}
		sb.WriteString("]")
	case w.ValueDateArray != nil:
		sb.WriteString(", valueDateArray: ")
		writeGraphQLStrings(sb, w.ValueDateArray)
	case w.ValueGeoRange != nil:
		g := w.ValueGeoRange
		fmt.Fprintf(sb, ", valueGeoRange: {geoCoordinates: {latitude: %s, longitude: %s}, distance: {max: %s}}",
			GraphQLFloat(g.GeoCoordinates.Latitude),
			GraphQLFloat(g.GeoCoordinates.Longitude),
			GraphQLFloat(g.Distance.Max))
	}
	sb.WriteString("}")
}

// GraphQLString quotes s as a GraphQL string literal. JSON string escaping
// is a subset of what GraphQL accepts.
func GraphQLString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func writeGraphQLStrings(sb *strings.Builder, ss []string) {
	sb.WriteString("[")
	for i, s := range ss {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(GraphQLString(s))
	}
	sb.WriteString("]")
}

// GraphQLFloat formats f as a GraphQL Float literal. It always emits a
// decimal point so the literal does not parse as an Int.
func GraphQLFloat(f float64) string {
	return floatLiteral(strconv.FormatFloat(f, 'f', -1, 64))
}

// GraphQLFloat32 is GraphQLFloat with the shortest float32 representation,
// so 0.1 stays 0.1 instead of its float64 widening.
func GraphQLFloat32(f float32) string {
	return floatLiteral(strconv.FormatFloat(float64(f), 'f', -1, 32))
}

func floatLiteral(s string) string {
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
