// Package geo provides the distance primitives the reconciliation
// pipeline is built on. All functions are pure and stateless.
package geo

import (
	"math"
)

// EarthRadiusMeters is the mean Earth radius used for all great-circle math.
const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance in meters between two
// latitude/longitude pairs given in degrees. NaN inputs propagate as NaN.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// PerpendicularDistance returns the distance in meters from a point to the
// segment [a, b]. The projection onto the segment is computed in raw
// (lat, lon) coordinates as if they were planar, with the projection
// parameter clamped to [0,1]; the reported distance from the point to the
// clamped projection is haversine. Mixing a planar projection with a
// spherical metric is fine at the extent of a single route and matches the
// recorded data this pipeline consumes.
func PerpendicularDistance(pLat, pLon, aLat, aLon, bLat, bLon float64) float64 {
	dLat := bLat - aLat
	dLon := bLon - aLon

	lenSq := dLat*dLat + dLon*dLon
	t := 0.0
	if lenSq > 0 {
		t = ((pLat-aLat)*dLat + (pLon-aLon)*dLon) / lenSq
		t = math.Max(0, math.Min(1, t))
	}

	projLat := aLat + t*dLat
	projLon := aLon + t*dLon

	return Haversine(pLat, pLon, projLat, projLon)
}

// Interpolate returns the point a fraction t of the way from (aLat, aLon)
// to (bLat, bLon) in raw coordinate space.
func Interpolate(aLat, aLon, bLat, bLon, t float64) (float64, float64) {
	return aLat + t*(bLat-aLat), aLon + t*(bLon-aLon)
}
