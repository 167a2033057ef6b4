package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		bag      types.Bag
		keys     []string
		expected types.Value
		found    bool
	}{
		{
			name:     "first key wins",
			bag:      types.Bag{"a": types.String("1"), "b": types.String("2")},
			keys:     []string{"a", "b"},
			expected: types.String("1"),
			found:    true,
		},
		{
			name:     "priority order is caller order not bag order",
			bag:      types.Bag{"a": types.String("1"), "b": types.String("2")},
			keys:     []string{"b", "a"},
			expected: types.String("2"),
			found:    true,
		},
		{
			name:     "empty value is skipped",
			bag:      types.Bag{"a": types.String("  "), "b": types.String("2")},
			keys:     []string{"a", "b"},
			expected: types.String("2"),
			found:    true,
		},
		{
			name:     "empty list is skipped",
			bag:      types.Bag{"a": types.List{}, "b": types.List{types.String("x")}},
			keys:     []string{"a", "b"},
			expected: types.List{types.String("x")},
			found:    true,
		},
		{
			name:  "no candidate present",
			bag:   types.Bag{"other": types.String("1")},
			keys:  []string{"a", "b"},
			found: false,
		},
		{
			name:  "nil value is absent",
			bag:   types.Bag{"a": nil},
			keys:  []string{"a"},
			found: false,
		},
		{
			name:     "exact match only, no accent folding",
			bag:      types.Bag{"téléphone": types.String("0601020304")},
			keys:     []string{"telephone"},
			expected: nil,
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, found := Resolve(tt.bag, tt.keys)
			require.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestResolveString(t *testing.T) {
	bag := types.Bag{
		"name":   types.String("  Marie  "),
		"nested": types.Object{"x": types.String("y")},
		"count":  types.Number(3),
	}

	assert.Equal(t, "Marie", ResolveString(bag, []string{"name"}), "should trim")
	assert.Equal(t, "", ResolveString(bag, []string{"nested"}), "non-scalar resolves empty")
	assert.Equal(t, "3", ResolveString(bag, []string{"count"}), "numbers stringify")
	assert.Equal(t, "", ResolveString(bag, []string{"missing"}))
}

func TestResolveStringDefault(t *testing.T) {
	bag := types.Bag{"nom": types.String("Marie")}

	assert.Equal(t, "Marie", ResolveStringDefault(bag, []string{"nom"}, "fallback"))
	assert.Equal(t, "fallback", ResolveStringDefault(bag, []string{"name"}, "fallback"))
}

func TestResolveNumber(t *testing.T) {
	bag := types.Bag{
		"tva":  types.Number(5.5),
		"text": types.String("abc"),
		"str":  types.String("12"),
	}

	assert.Equal(t, 5.5, ResolveNumber(bag, []string{"tva"}, 20))
	assert.Equal(t, 12.0, ResolveNumber(bag, []string{"str"}, 20), "numeric strings are accepted")
	assert.Equal(t, 20.0, ResolveNumber(bag, []string{"text"}, 20), "non-numeric falls back")
	assert.Equal(t, 20.0, ResolveNumber(bag, []string{"missing"}, 20))
}
