package normalize

import (
	"strings"
	"time"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// dateLayouts are tried in order. ISO-8601 forms first, then the
// day/month/year form common in the source documents.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// CoerceDate parses a date-like string, falling back to the current time
// when the input is absent or matches no known layout. Extraction output is
// untrusted free text; losing one date field is preferable to aborting the
// whole document.
func CoerceDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return timeNow()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return timeNow()
}
