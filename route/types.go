package route

import (
	"time"
)

// Recording modes accepted in an input document.
const (
	RecordingModeManual    = "manual"
	RecordingModeAutomatic = "automatic"
)

// LatLon is a bare latitude/longitude pair in degrees.
type LatLon struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate is one recorded trace point. Insertion order is the traversal
// order along the route. Height, gradient and timestamp are optional;
// Timestamp, when present, is an ISO-8601 string.
type Coordinate struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Height    *float64 `json:"height,omitempty"`
	Gradient  *float64 `json:"gradient,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// Time parses the coordinate's timestamp. The second return is false when
// the coordinate carries no parseable timestamp.
func (c Coordinate) Time() (time.Time, bool) {
	return ParseTimestamp(c.Timestamp)
}

// Marker is a detected proximity event to a named trackside object. It
// carries one of two position references: the repeatedly-updated onspot
// observation (closest approach, last value kept) or the write-once
// detectedAt observation (first sighting). Onspot wins when both exist.
type Marker struct {
	StationName    string   `json:"stationName"`
	MarkerType     string   `json:"markerType"`
	PlatformLength *float64 `json:"platformLength,omitempty"`

	OnspotLatitude  *float64 `json:"onspotLatitude,omitempty"`
	OnspotLongitude *float64 `json:"onspotLongitude,omitempty"`
	OnspotDistance  *float64 `json:"onspotDistance,omitempty"`

	DetectedAt          *LatLon  `json:"detectedAt,omitempty"`
	DistanceAheadMeters *float64 `json:"distanceAheadMeters,omitempty"`
}

// HasOnspot reports whether the closest-approach observation is complete.
func (m Marker) HasOnspot() bool {
	return m.OnspotLatitude != nil && m.OnspotLongitude != nil && m.OnspotDistance != nil
}

// HasDetectedAt reports whether the first-sighting observation is complete.
func (m Marker) HasDetectedAt() bool {
	return m.DetectedAt != nil && m.DistanceAheadMeters != nil
}

// ResolvedMarker is the output form of a Marker: the detection-source
// fields are stripped and replaced with the single resolved position.
// Latitude/Longitude are omitted for markers that could not be resolved.
type ResolvedMarker struct {
	StationName    string   `json:"stationName"`
	MarkerType     string   `json:"markerType"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	PlatformLength *float64 `json:"platformLength,omitempty"`
}

// Resolved reports whether the marker obtained a position.
func (m ResolvedMarker) Resolved() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// Stop is a detected dwell episode: a contiguous run of trace coordinates
// the recording lingered in. Stops are transient - recomputed from the
// trace, never stored independently of it.
type Stop struct {
	StartIndex      int       `json:"startIndex"`
	EndIndex        int       `json:"endIndex"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationSeconds float64   `json:"durationSeconds"`
	Centroid        LatLon    `json:"centroid"`
	PointCount      int       `json:"pointCount"`
}

// TimetableEntry is an authored intended stop. Index is monotonic and
// matches station visiting order; that order is the ground truth for route
// progression. Coordinates are either user-supplied (authoritative, never
// overwritten) or filled in by the pipeline.
type TimetableEntry struct {
	Index       int      `json:"index"`
	Destination string   `json:"destination"`
	Arrival     string   `json:"arrival"`
	Departure   string   `json:"departure"`
	Platform    string   `json:"platform"`
	APIName     string   `json:"apiName"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the entry already carries a position.
func (e TimetableEntry) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Document is the input to one pipeline run: a complete recorded trace
// with its discovered markers and the timetable skeleton.
type Document struct {
	RouteName     string           `json:"routeName"`
	TimetableID   string           `json:"timetableId"`
	RecordingMode string           `json:"recordingMode" validate:"omitempty,oneof=manual automatic"`
	Coordinates   []Coordinate     `json:"coordinates"`
	Markers       []Marker         `json:"markers"`
	Timetable     []TimetableEntry `json:"timetable"`
}

// Artifact is the output of one pipeline run: the same document shape with
// the trace simplified, markers resolved, timetable entries filled in
// where resolvable, and diagnostics counts attached.
type Artifact struct {
	RouteName     string           `json:"routeName"`
	TimetableID   string           `json:"timetableId"`
	RecordingMode string           `json:"recordingMode"`
	Coordinates   []Coordinate     `json:"coordinates"`
	Markers       []ResolvedMarker `json:"markers"`
	Timetable     []TimetableEntry `json:"timetable"`

	DetectedStops     int `json:"detectedStops"`
	UnresolvedMarkers int `json:"unresolvedMarkers"`
}
