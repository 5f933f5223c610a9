package route

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
)

// rawDocument mirrors Document with pointer-typed collections so a missing
// key can be told apart from an empty one. An empty trace degrades inside
// the pipeline; a document without the keys at all is malformed.
type rawDocument struct {
	RouteName     string            `json:"routeName"`
	TimetableID   string            `json:"timetableId"`
	RecordingMode string            `json:"recordingMode"`
	Coordinates   *[]Coordinate     `json:"coordinates"`
	Markers       []Marker          `json:"markers"`
	Timetable     *[]TimetableEntry `json:"timetable"`
}

// ParseDocument decodes and structurally validates an input document.
// Invalid JSON, a missing coordinates or timetable key, or an unknown
// recordingMode are the only fatal conditions; everything else degrades
// downstream per the pipeline's fail-soft rules.
func ParseDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	if raw.Coordinates == nil {
		return Document{}, fmt.Errorf("parse document: missing coordinates key")
	}
	if raw.Timetable == nil {
		return Document{}, fmt.Errorf("parse document: missing timetable key")
	}

	doc := Document{
		RouteName:     raw.RouteName,
		TimetableID:   raw.TimetableID,
		RecordingMode: raw.RecordingMode,
		Coordinates:   *raw.Coordinates,
		Markers:       raw.Markers,
		Timetable:     *raw.Timetable,
	}
	if doc.RecordingMode == "" {
		doc.RecordingMode = RecordingModeManual
	}

	if err := validator.New().Struct(doc); err != nil {
		return Document{}, fmt.Errorf("validate document: %w", err)
	}
	return doc, nil
}

// Clone returns a deep copy of the document. Each pipeline run operates on
// an independently owned copy of its input.
func (d Document) Clone() Document {
	var out Document
	if err := copier.CopyWithOption(&out, d, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on invalid destination types; ours is fixed.
		return d
	}
	return out
}
