// Package session models the mutable in-process state of one route
// recording. A Recording is an explicit object passed by reference into
// the pipeline entry point, never module-level state, so multiple
// recordings can run side by side without cross-talk. A Recording is not
// safe for concurrent use by itself; each recording belongs to one
// goroutine.
package session

import (
	"github.com/jinzhu/copier"

	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// Recording accumulates a trace, its markers, and the timetable skeleton
// while a journey is being recorded. Every mutation bumps the version, and
// Snapshot produces an independently owned document for the pipeline.
type Recording struct {
	routeName     string
	timetableID   string
	recordingMode string
	version       int

	coords      []route.Coordinate
	markers     []route.Marker
	markerIndex map[string]int
	timetable   []route.TimetableEntry
}

// New starts a recording for a route with its authored timetable skeleton.
func New(routeName, timetableID, recordingMode string, timetable []route.TimetableEntry) *Recording {
	return &Recording{
		routeName:     routeName,
		timetableID:   timetableID,
		recordingMode: recordingMode,
		markerIndex:   map[string]int{},
		timetable:     timetable,
	}
}

// Version returns the monotonic mutation counter.
func (r *Recording) Version() int {
	return r.version
}

// AppendCoordinate records the next trace point. Insertion order is the
// traversal order along the route.
func (r *Recording) AppendCoordinate(c route.Coordinate) {
	r.coords = append(r.coords, c)
	r.version++
}

func (r *Recording) marker(stationName, markerType string) *route.Marker {
	key := stationName + "\x00" + markerType
	if i, ok := r.markerIndex[key]; ok {
		return &r.markers[i]
	}
	r.markers = append(r.markers, route.Marker{StationName: stationName, MarkerType: markerType})
	r.markerIndex[key] = len(r.markers) - 1
	return &r.markers[len(r.markers)-1]
}

// ObserveOnspot records a closest-approach observation for a marker. The
// game reports these repeatedly as the train nears the object; the last
// value wins, since the smallest residual distance is the most accurate.
func (r *Recording) ObserveOnspot(stationName, markerType string, lat, lon, distanceMeters float64) {
	m := r.marker(stationName, markerType)
	m.OnspotLatitude = &lat
	m.OnspotLongitude = &lon
	m.OnspotDistance = &distanceMeters
	r.version++
}

// ObserveDetection records a first-sighting observation for a marker.
// Write-once: later sightings of the same marker are ignored.
func (r *Recording) ObserveDetection(stationName, markerType string, at route.LatLon, aheadMeters float64) {
	m := r.marker(stationName, markerType)
	if m.DetectedAt != nil {
		return
	}
	m.DetectedAt = &at
	m.DistanceAheadMeters = &aheadMeters
	r.version++
}

// SetPlatformLength attaches the reported platform length to a marker.
func (r *Recording) SetPlatformLength(stationName, markerType string, meters float64) {
	m := r.marker(stationName, markerType)
	m.PlatformLength = &meters
	r.version++
}

// Snapshot returns a deep copy of the current recording state as a
// pipeline input document. Mutating the recording afterwards does not
// affect the snapshot.
func (r *Recording) Snapshot() route.Document {
	doc := route.Document{
		RouteName:     r.routeName,
		TimetableID:   r.timetableID,
		RecordingMode: r.recordingMode,
	}
	// copier only fails on invalid destination types; these are fixed.
	_ = copier.CopyWithOption(&doc.Coordinates, r.coords, copier.Option{DeepCopy: true})
	_ = copier.CopyWithOption(&doc.Markers, r.markers, copier.Option{DeepCopy: true})
	_ = copier.CopyWithOption(&doc.Timetable, r.timetable, copier.Option{DeepCopy: true})
	return doc
}
