package pipeline

import (
	"github.com/hcfairbanks/tsw-hud-project-sub000/geo"
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// Simplify reduces an ordered coordinate sequence with Ramer-Douglas-Peucker.
// The first and last point of any processed segment are always kept, and
// every discarded point lies within epsilonMeters of the line connecting
// its surviving neighbours. Sequences of fewer than three points are
// returned unchanged. Distance is measured in real meters via haversine.
func Simplify(coords []route.Coordinate, epsilonMeters float64) []route.Coordinate {
	if len(coords) < 3 {
		return coords
	}

	first := coords[0]
	last := coords[len(coords)-1]

	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(coords)-1; i++ {
		d := geo.PerpendicularDistance(
			coords[i].Latitude, coords[i].Longitude,
			first.Latitude, first.Longitude,
			last.Latitude, last.Longitude,
		)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > epsilonMeters {
		left := Simplify(coords[:maxIdx+1], epsilonMeters)
		right := Simplify(coords[maxIdx:], epsilonMeters)
		// The split point appears at the end of left and the start of
		// right; keep it once.
		out := make([]route.Coordinate, 0, len(left)+len(right)-1)
		out = append(out, left...)
		out = append(out, right[1:]...)
		return out
	}

	return []route.Coordinate{first, last}
}
