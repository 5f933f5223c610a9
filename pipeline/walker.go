package pipeline

import (
	"math"

	"github.com/hcfairbanks/tsw-hud-project-sub000/geo"
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// Walker provides nearest-point lookup and along-path distance projection
// over the full-density trace. A linear scan is fine at expected trace
// sizes (tens of thousands of points, one lookup per marker or stop).
type Walker struct {
	coords []route.Coordinate
}

// NewWalker wraps an ordered coordinate sequence. The walker does not copy
// the slice; callers must not mutate it while the walker is in use.
func NewWalker(coords []route.Coordinate) *Walker {
	return &Walker{coords: coords}
}

// NearestIndex returns the index of the coordinate closest to (lat, lon),
// or -1 for an empty trace. Ties resolve to the lowest index.
func (w *Walker) NearestIndex(lat, lon float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range w.coords {
		d := geo.Haversine(lat, lon, c.Latitude, c.Longitude)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// WalkForward follows the trace from start, accumulating segment lengths
// until the running total crosses distanceMeters, and interpolates within
// the crossing segment. It never extrapolates: when start is already the
// last index, or the remaining path is shorter than distanceMeters, the
// last coordinate is returned unmodified.
func (w *Walker) WalkForward(start int, distanceMeters float64) (float64, float64) {
	last := len(w.coords) - 1
	if last < 0 {
		return 0, 0
	}
	if start < 0 {
		start = 0
	}
	if start >= last {
		c := w.coords[last]
		return c.Latitude, c.Longitude
	}

	traveled := 0.0
	for i := start; i < last; i++ {
		a := w.coords[i]
		b := w.coords[i+1]
		seg := geo.Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
		if traveled+seg >= distanceMeters {
			t := 0.0
			if seg > 0 {
				t = (distanceMeters - traveled) / seg
			}
			return geo.Interpolate(a.Latitude, a.Longitude, b.Latitude, b.Longitude, t)
		}
		traveled += seg
	}

	c := w.coords[last]
	return c.Latitude, c.Longitude
}

// TotalLength returns the along-path length of the trace in meters.
func (w *Walker) TotalLength() float64 {
	total := 0.0
	for i := 1; i < len(w.coords); i++ {
		a := w.coords[i-1]
		b := w.coords[i]
		total += geo.Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	}
	return total
}
