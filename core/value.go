// SPDX-License-Identifier: MIT

// File: value.go
// Role: Tagged property values (null/bool/number/string/list/map) with
//       structural equality and conversion to and from plain Go values.
// Determinism:
//   - Keys() returns map keys sorted ascending.

package core

import (
	"fmt"
	"math"
	"sort"
)

// Kind enumerates the variants a Value can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the lower-case kind name.
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
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is an immutable tagged property value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps f. All numbers are float64.
func Number(f float64) Value { return Value{kind: KindNumber, n: f} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps a copy of items.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)

	return Value{kind: KindList, list: cp}
}

// Map wraps a copy of m.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return Value{kind: KindMap, m: cp}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Items returns the list elements (nil unless v is a list).
func (v Value) Items() []Value { return v.list }

// Field returns the map entry for key.
func (v Value) Field(key string) (Value, bool) {
	x, ok := v.m[key]

	return x, ok
}

// Keys returns the map keys in ascending order (nil unless v is a map).
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}

	return SortedKeys(v.m)
}

// Equal reports structural equality. NaN equals NaN and -0 equals +0,
// matching how values are serialized.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		if math.IsNaN(v.n) && math.IsNaN(o.n) {
			return true
		}
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, x := range v.m {
			y, ok := o.m[k]
			if !ok || !x.Equal(y) {
				return false
			}
		}
		return true
	}

	return false
}

// Any converts v to plain Go values: nil, bool, float64, string,
// []any and map[string]any.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, x := range v.list {
			out[i] = x.Any()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, x := range v.m {
			out[k] = x.Any()
		}
		return out
	default:
		return nil
	}
}

// FromAny converts a decoded JSON/YAML-style Go value into a Value.
// Integer kinds are widened to float64.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{kind: KindList, list: items}, nil
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = v
		}
		return Value{kind: KindMap, m: m}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}

// SortedKeys returns the keys of a property map in ascending order.
func SortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// PropertiesEqual compares two property maps with Value.Equal.
func PropertiesEqual(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, x := range a {
		y, ok := b[k]
		if !ok || !x.Equal(y) {
			return false
		}
	}

	return true
}

func copyProps(m map[string]Value) map[string]Value {
	if m == nil {
		return nil
	}
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}
