package pipeline

import (
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// resolveMarkers computes each marker's position by projecting its
// reference observation onto the trace: nearest trace point to the
// observation, then the residual distance walked forward along the path.
// The repeatedly-updated onspot observation (closest approach) is
// preferred over the write-once detectedAt observation. A marker lacking
// both sources is never an error; it stays unresolved and is counted.
func resolveMarkers(markers []route.Marker, w *Walker) ([]route.ResolvedMarker, int) {
	resolved := make([]route.ResolvedMarker, 0, len(markers))
	unresolved := 0

	for _, m := range markers {
		out := route.ResolvedMarker{
			StationName:    m.StationName,
			MarkerType:     m.MarkerType,
			PlatformLength: m.PlatformLength,
		}

		var refLat, refLon, residual float64
		hasRef := false
		switch {
		case m.HasOnspot():
			refLat, refLon, residual = *m.OnspotLatitude, *m.OnspotLongitude, *m.OnspotDistance
			hasRef = true
		case m.HasDetectedAt():
			refLat, refLon, residual = m.DetectedAt.Latitude, m.DetectedAt.Longitude, *m.DistanceAheadMeters
			hasRef = true
		}

		if hasRef {
			if idx := w.NearestIndex(refLat, refLon); idx >= 0 {
				lat, lon := w.WalkForward(idx, residual)
				out.Latitude = &lat
				out.Longitude = &lon
			}
		}
		if !out.Resolved() {
			unresolved++
		}
		resolved = append(resolved, out)
	}

	return resolved, unresolved
}
