package route

import (
	"strings"
	"testing"
)

const validDocument = `{
	"routeName": "WCML South",
	"timetableId": "tt-8",
	"recordingMode": "automatic",
	"coordinates": [
		{"latitude": 51.5281, "longitude": -0.1337, "timestamp": "2026-03-14T09:30:00Z"},
		{"latitude": 51.5285, "longitude": -0.1341, "height": 35.2, "gradient": 0.4}
	],
	"markers": [
		{"stationName": "Euston", "markerType": "station", "onspotLatitude": 51.5281, "onspotLongitude": -0.1337, "onspotDistance": 12.5}
	],
	"timetable": [
		{"index": 1, "destination": "Euston", "arrival": "09:28", "departure": "09:31", "platform": "4", "apiName": "Euston"}
	]
}`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(validDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.RouteName != "WCML South" || doc.TimetableID != "tt-8" {
		t.Error("header fields not parsed")
	}
	if len(doc.Coordinates) != 2 || len(doc.Markers) != 1 || len(doc.Timetable) != 1 {
		t.Error("collections not parsed")
	}
	if !doc.Markers[0].HasOnspot() {
		t.Error("expected a complete onspot observation")
	}
	if doc.Coordinates[1].Height == nil || *doc.Coordinates[1].Height != 35.2 {
		t.Error("optional height not parsed")
	}
	if _, ok := doc.Coordinates[0].Time(); !ok {
		t.Error("expected a parseable timestamp")
	}
	if _, ok := doc.Coordinates[1].Time(); ok {
		t.Error("expected no timestamp on the second coordinate")
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "invalid json",
			input:   `{"routeName": `,
			wantErr: "parse document",
		},
		{
			name:    "missing coordinates key",
			input:   `{"routeName": "x", "timetable": []}`,
			wantErr: "missing coordinates key",
		},
		{
			name:    "missing timetable key",
			input:   `{"routeName": "x", "coordinates": []}`,
			wantErr: "missing timetable key",
		},
		{
			name:    "unknown recording mode",
			input:   `{"recordingMode": "telepathic", "coordinates": [], "timetable": []}`,
			wantErr: "validate document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestParseDocumentEmptyCollectionsAreFine(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"coordinates": [], "timetable": []}`))
	if err != nil {
		t.Fatalf("empty collections must not be fatal: %v", err)
	}
	if doc.RecordingMode != RecordingModeManual {
		t.Errorf("expected manual mode default, got %q", doc.RecordingMode)
	}
}

func TestDocumentClone(t *testing.T) {
	doc, err := ParseDocument([]byte(validDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := doc.Clone()
	clone.Coordinates[0].Latitude = 0
	*clone.Markers[0].OnspotDistance = 999
	lat := 1.0
	clone.Timetable[0].Latitude = &lat

	if doc.Coordinates[0].Latitude == 0 {
		t.Error("clone shares the coordinate array")
	}
	if *doc.Markers[0].OnspotDistance == 999 {
		t.Error("clone shares marker pointers")
	}
	if doc.Timetable[0].Latitude != nil {
		t.Error("clone shares the timetable array")
	}
}
