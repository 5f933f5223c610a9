package route

import (
	"time"
)

// timestampFormats are the ISO-8601 variants seen in recorded traces.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000000000Z07:00",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601 timestamp string. Returns false for an
// empty or unparseable value.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a time in the canonical form recorded traces use.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
