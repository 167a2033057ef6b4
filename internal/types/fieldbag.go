// Package types provides type definitions for structured data used throughout the document generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a variant-tagged value extracted from free text. Extraction output
// is loosely typed (arbitrary JSON from the language model), so shape checks
// happen through the concrete type rather than reflection on interface{}.
type Value interface {
	isValue()
}

// String is a text value.
type String string

// Number is a numeric value. JSON numbers always decode to Number.
type Number float64

// Bool is a boolean value.
type Bool bool

// List is an ordered sequence of values.
type List []Value

// Object is a nested mapping, e.g. a structured experience entry.
type Object map[string]Value

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (List) isValue()   {}
func (Object) isValue() {}

// Bag is the raw key/value result of extraction. Keys may appear in several
// language or spelling variants for the same concept ("telephone" vs
// "téléphone"); resolving variants is the normalizer's job, not the bag's.
type Bag map[string]Value

// FromAny converts a decoded JSON value (map[string]any, []any, string,
// float64, bool, nil) into a tagged Value. Unknown types are stringified.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return String(t)
	case float64:
		return Number(t)
	case int:
		return Number(t)
	case bool:
		return Bool(t)
	case []any:
		list := make(List, 0, len(t))
		for _, item := range t {
			list = append(list, FromAny(item))
		}
		return list
	case map[string]any:
		obj := make(Object, len(t))
		for k, item := range t {
			obj[k] = FromAny(item)
		}
		return obj
	default:
		return String(fmt.Sprintf("%v", t))
	}
}

// ParseBag decodes a JSON object into a Bag.
func ParseBag(data []byte) (Bag, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse field bag JSON: %w", err)
	}
	return BagFromMap(raw), nil
}

// UnmarshalJSON decodes a JSON object into the bag. Tagged values marshal
// through their underlying types, so marshaling needs no counterpart.
func (b *Bag) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBag(data)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// BagFromMap converts a decoded JSON object into a Bag.
func BagFromMap(raw map[string]any) Bag {
	bag := make(Bag, len(raw))
	for k, v := range raw {
		bag[k] = FromAny(v)
	}
	return bag
}

// Keys returns the bag's keys in sorted order.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether a value carries no usable data: absent, an empty or
// whitespace-only string, or an empty list. Numbers and booleans are never
// empty; zero is a legitimate extracted value.
func IsEmpty(v Value) bool {
	switch t := v.(type) {
	case nil:
		return true
	case String:
		return strings.TrimSpace(string(t)) == ""
	case List:
		return len(t) == 0
	default:
		return false
	}
}

// AsString renders a scalar value for display. Objects and lists return ""
// since they have no flat representation; callers handle those shapes first.
func AsString(v Value) string {
	switch t := v.(type) {
	case String:
		return string(t)
	case Number:
		return strconv.FormatFloat(float64(t), 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(t))
	default:
		return ""
	}
}

// AsNumber extracts a numeric value, accepting numeric strings as a
// convenience since extraction output does not distinguish them reliably.
func AsNumber(v Value) (float64, bool) {
	switch t := v.(type) {
	case Number:
		return float64(t), true
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
