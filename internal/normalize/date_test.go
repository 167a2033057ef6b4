package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerceDate(t *testing.T) {
	frozen := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return frozen }
	defer func() { timeNow = orig }()

	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{
			name:     "absent falls back to now",
			raw:      "",
			expected: frozen,
		},
		{
			name:     "whitespace falls back to now",
			raw:      "   ",
			expected: frozen,
		},
		{
			name:     "iso date",
			raw:      "2024-03-01",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "iso datetime",
			raw:      "2024-03-01T14:30:00",
			expected: time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339",
			raw:      "2024-03-01T14:30:00Z",
			expected: time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "slash separated reads day/month/year",
			raw:      "01/03/2024",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unparseable falls back to now",
			raw:      "not-a-date",
			expected: frozen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceDate(tt.raw)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}
