package normalize

import (
	"strings"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// Resolve returns the value of the first candidate key present in the bag
// with a non-empty value. Matching is exact: variant enumeration lives in the
// key tables, not here.
func Resolve(bag types.Bag, keys []string) (types.Value, bool) {
	for _, key := range keys {
		if v, ok := bag[key]; ok && !types.IsEmpty(v) {
			return v, true
		}
	}
	return nil, false
}

// ResolveString resolves a scalar field to a trimmed display string.
// Absent, empty and non-scalar values all resolve to the empty string.
func ResolveString(bag types.Bag, keys []string) string {
	v, ok := Resolve(bag, keys)
	if !ok {
		return ""
	}
	return strings.TrimSpace(types.AsString(v))
}

// ResolveStringDefault resolves a scalar field, substituting fallback when
// nothing usable is present.
func ResolveStringDefault(bag types.Bag, keys []string, fallback string) string {
	if s := ResolveString(bag, keys); s != "" {
		return s
	}
	return fallback
}

// ResolveNumber resolves a numeric field, substituting fallback when the
// value is absent or not number-shaped.
func ResolveNumber(bag types.Bag, keys []string, fallback float64) float64 {
	v, ok := Resolve(bag, keys)
	if !ok {
		return fallback
	}
	n, ok := types.AsNumber(v)
	if !ok {
		return fallback
	}
	return n
}

// objectString returns the first non-empty scalar among the candidate keys
// of a structured sub-record.
func objectString(obj types.Object, keys []string) string {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if s := strings.TrimSpace(types.AsString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// objectNumber returns the first number-shaped value among the candidate
// keys of a structured sub-record.
func objectNumber(obj types.Object, keys []string, fallback float64) float64 {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if n, ok := types.AsNumber(v); ok {
				return n
			}
		}
	}
	return fallback
}
