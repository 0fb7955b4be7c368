package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
)

// Kind identifies which JSON type a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is any JSON value. Object properties, module configs and
// classification settings are user defined and only known at runtime, so
// they are stored as Values rather than fixed structs.
//
// The zero Value is JSON null. Numbers keep their textual form, so an
// integer read from the server is written back unchanged.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	arr  []Value
	obj  map[string]Value
}

// Properties is the property bag of an object.
type Properties map[string]Value

// Null is the JSON null value.
func Null() Value { return Value{} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps i as a number.
func Int(i int64) Value { return Value{kind: KindNumber, n: json.Number(strconv.FormatInt(i, 10))} }

// Float wraps f as a number.
func Float(f float64) Value {
	return Value{kind: KindNumber, n: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array copies vs into a new array value.
func Array(vs ...Value) Value {
	arr := make([]Value, len(vs))
	copy(arr, vs)
	return Value{kind: KindArray, arr: arr}
}

// ObjectValue copies m into a new object value.
func ObjectValue(m map[string]Value) Value {
	obj := make(map[string]Value, len(m))
	for k, v := range m {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Strings is a shorthand for an array of string values, e.g. a text[]
// property.
func Strings(ss ...string) Value {
	arr := make([]Value, len(ss))
	for i, s := range ss {
		arr[i] = String(s)
	}
	return Value{kind: KindArray, arr: arr}
}

// Date renders t in RFC 3339 form, the format of date properties.
func Date(t time.Time) Value { return String(t.UTC().Format(time.RFC3339Nano)) }

// GeoCoordinates is the value of a geoCoordinates property.
func GeoCoordinates(latitude, longitude float64) Value {
	return ObjectValue(map[string]Value{
		"latitude":  Float(latitude),
		"longitude": Float(longitude),
	})
}

// ValueOf converts a Go value into a Value. It accepts the types produced by
// encoding/json plus the common scalar, slice and map types.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return Value{kind: KindNumber, n: json.Number(strconv.FormatUint(t, 10))}, nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return Value{kind: KindNumber, n: t}, nil
	case string:
		return String(t), nil
	case strfmt.UUID:
		return String(t.String()), nil
	case strfmt.DateTime:
		return Date(time.Time(t)), nil
	case time.Time:
		return Date(t), nil
	case []string:
		return Strings(t...), nil
	case []float32:
		arr := make([]Value, len(t))
		for i, f := range t {
			arr[i] = Float(float64(f))
		}
		return Value{kind: KindArray, arr: arr}, nil
	case []float64:
		arr := make([]Value, len(t))
		for i, f := range t {
			arr[i] = Float(f)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			v, err := ValueOf(e)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = v
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := ValueOf(e)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = v
		}
		return Value{kind: KindObject, obj: obj}, nil
	case map[string]Value:
		return ObjectValue(t), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", x)
	}
}

// Kind reports the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v is one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the string and whether v is one.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt reports false when v is not a number or does not fit an int64.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	i, err := v.n.Int64()
	return i, err == nil
}

// AsFloat returns the number as float64 and whether v is a number.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := v.n.Float64()
	return f, err == nil
}

// AsArray returns the elements of an array value. The slice is shared.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the members of an object value. The map is shared.
func (v Value) AsObject() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// Get returns the member key of an object value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	m, ok := v.obj[key]
	return m, ok
}

// Interface converts v to the representation encoding/json uses when
// decoding into an interface{}, except that numbers are float64 only when
// they are not integral.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if i, err := v.n.Int64(); err == nil {
			return i
		}
		f, _ := v.n.Float64()
		return f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

func (v Value) String() string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindNumber:
		if v.n == "" {
			return []byte("0"), nil
		}
		return []byte(v.n), nil
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.obj)
	default:
		return nil, fmt.Errorf("models: invalid value kind %d", v.kind)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = fromDecoded(raw)
	return nil
}

func fromDecoded(raw any) Value {
	switch t := raw.(type) {
	case bool:
		return Bool(t)
	case json.Number:
		return Value{kind: KindNumber, n: t}
	case string:
		return String(t)
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = fromDecoded(e)
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = fromDecoded(e)
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return Value{}
	}
}

// Keys returns the property names of p in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map converts p to plain Go values.
func (p Properties) Map() map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = v.Interface()
	}
	return out
}

// PropertiesOf converts a plain map into Properties.
func PropertiesOf(m map[string]any) (Properties, error) {
	out := make(Properties, len(m))
	for k, x := range m {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}
