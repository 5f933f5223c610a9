package route

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "rfc3339",
			input:    "2026-03-14T09:30:00Z",
			expected: "2026-03-14T09:30:00Z",
			ok:       true,
		},
		{
			name:     "rfc3339 with offset",
			input:    "2026-03-14T10:30:00+01:00",
			expected: "2026-03-14T09:30:00Z",
			ok:       true,
		},
		{
			name:     "fractional seconds",
			input:    "2026-03-14T09:30:00.250Z",
			expected: "2026-03-14T09:30:00Z",
			ok:       true,
		},
		{
			name:     "no zone",
			input:    "2026-03-14T09:30:00",
			expected: "2026-03-14T09:30:00Z",
			ok:       true,
		},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "yesterday-ish", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !tt.ok {
				return
			}
			if formatted := FormatTimestamp(got.Truncate(time.Second)); formatted != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, formatted)
			}
		})
	}
}
