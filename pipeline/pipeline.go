package pipeline

import (
	"github.com/rs/zerolog/log"

	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// Reconciler runs the raw-trace reconciliation pipeline: marker
// resolution, dwell detection, timetable matching, then path
// simplification. One call per recorded trace; calls are independent and
// safe to run in parallel across distinct documents.
type Reconciler struct {
	opts Options
}

// Diagnostics summarizes the soft-degradation events of one run. Missing
// data never fails a run; it shows up here and in the artifact's counts.
type Diagnostics struct {
	DetectedStops               int
	UnresolvedMarkers           int
	UnassignedEntries           int
	CoordinatesWithoutTimestamp int
	InputPointCount             int
	OutputPointCount            int
	PathLengthMeters            float64
}

// NewReconciler creates a reconciler with the given tolerances.
func NewReconciler(opts Options) *Reconciler {
	return &Reconciler{opts: opts}
}

// Reconcile runs the full pipeline over one recorded document and returns
// the route artifact plus run diagnostics. The input document is deep
// copied first; the caller's copy is never mutated.
//
// Position resolution (markers, stops, matching) consumes the full-density
// trace; simplification runs last, purely to reduce stored point count.
func (r *Reconciler) Reconcile(in route.Document) (route.Artifact, Diagnostics) {
	doc := in.Clone()
	warnings := NewWarningAggregator()

	walker := NewWalker(doc.Coordinates)
	if len(doc.Coordinates) == 0 {
		warnings.Add(WarningEmptyTrace, doc.RouteName)
	}

	resolved, unresolvedCount := resolveMarkers(doc.Markers, walker)
	for _, m := range resolved {
		if !m.Resolved() {
			warnings.Add(WarningMarkerUnresolved, m.StationName)
		}
	}

	// Dwell detection only applies to traces recorded in automatic mode;
	// manual recordings tagged their position events explicitly.
	var stops []route.Stop
	missingTimestamps := 0
	if doc.RecordingMode == route.RecordingModeAutomatic {
		detector := StopDetector{
			NoiseRadiusMeters: r.opts.GPSNoiseRadiusMeters,
			MinPoints:         r.opts.MinPointsForStop,
			MinDuration:       r.opts.minStopDuration(),
		}
		stops, missingTimestamps = detector.Detect(doc.Coordinates)
		warnings.AddMany(WarningNoTimestamp, missingTimestamps)
	}

	var pathEnd *route.Coordinate
	if n := len(doc.Coordinates); n > 0 {
		end := doc.Coordinates[n-1]
		pathEnd = &end
	}
	unassigned := matchStops(doc.Timetable, stops, resolved, pathEnd)
	for _, e := range doc.Timetable {
		if !e.HasCoordinates() {
			warnings.Add(WarningEntryUnassigned, e.Destination)
		}
	}

	simplified := Simplify(doc.Coordinates, r.opts.SimplifyEpsilonMeters)

	warnings.LogAll(doc.RouteName)
	log.Debug().
		Str("route", doc.RouteName).
		Int("inputPoints", len(doc.Coordinates)).
		Int("outputPoints", len(simplified)).
		Int("detectedStops", len(stops)).
		Msg("reconciled trace")

	artifact := route.Artifact{
		RouteName:         doc.RouteName,
		TimetableID:       doc.TimetableID,
		RecordingMode:     doc.RecordingMode,
		Coordinates:       simplified,
		Markers:           resolved,
		Timetable:         doc.Timetable,
		DetectedStops:     len(stops),
		UnresolvedMarkers: unresolvedCount,
	}
	diag := Diagnostics{
		DetectedStops:               len(stops),
		UnresolvedMarkers:           unresolvedCount,
		UnassignedEntries:           unassigned,
		CoordinatesWithoutTimestamp: missingTimestamps,
		InputPointCount:             len(in.Coordinates),
		OutputPointCount:            len(simplified),
		PathLengthMeters:            walker.TotalLength(),
	}
	return artifact, diag
}
