package geo

import (
	"math"
	"testing"
)

// metersPerLatDegree is the haversine length of one degree of latitude.
const metersPerLatDegree = 2 * math.Pi * EarthRadiusMeters / 360

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{
			name:     "same point",
			lat1:     52.5, lon1: 13.4, lat2: 52.5, lon2: 13.4,
			expected: 0, tolerance: 0.001,
		},
		{
			name:     "one degree of latitude",
			lat1:     0, lon1: 0, lat2: 1, lon2: 0,
			expected: metersPerLatDegree, tolerance: 0.01,
		},
		{
			name:     "one degree of longitude at equator",
			lat1:     0, lon1: 0, lat2: 0, lon2: 1,
			expected: metersPerLatDegree, tolerance: 0.01,
		},
		{
			name:     "london euston to milton keynes",
			lat1:     51.5281, lon1: -0.1337, lat2: 52.0344, lon2: -0.7734,
			expected: 71456, tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("expected %f +- %f, got %f", tt.expected, tt.tolerance, got)
			}
		})
	}
}

func TestHaversineNaNPropagates(t *testing.T) {
	if got := Haversine(math.NaN(), 0, 1, 1); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %f", got)
	}
}

func TestPerpendicularDistance(t *testing.T) {
	tests := []struct {
		name                               string
		pLat, pLon, aLat, aLon, bLat, bLon float64
		expected                           float64
		tolerance                          float64
	}{
		{
			name: "point on the line",
			pLat: 0.5, pLon: 0, aLat: 0, aLon: 0, bLat: 1, bLon: 0,
			expected: 0, tolerance: 0.001,
		},
		{
			name: "offset from a meridian segment",
			pLat: 0.5, pLon: 0.001, aLat: 0, aLon: 0, bLat: 1, bLon: 0,
			expected: 0.001 * metersPerLatDegree, tolerance: 0.05,
		},
		{
			name: "projection clamps to the far endpoint",
			pLat: 2, pLon: 0, aLat: 0, aLon: 0, bLat: 1, bLon: 0,
			expected: metersPerLatDegree, tolerance: 0.05,
		},
		{
			name: "projection clamps to the near endpoint",
			pLat: -1, pLon: 0, aLat: 0, aLon: 0, bLat: 1, bLon: 0,
			expected: metersPerLatDegree, tolerance: 0.05,
		},
		{
			name: "degenerate segment clamps to the endpoint",
			pLat: 1, pLon: 0, aLat: 0, aLon: 0, bLat: 0, bLon: 0,
			expected: metersPerLatDegree, tolerance: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerpendicularDistance(tt.pLat, tt.pLon, tt.aLat, tt.aLon, tt.bLat, tt.bLon)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("expected %f +- %f, got %f", tt.expected, tt.tolerance, got)
			}
		})
	}
}

func TestInterpolate(t *testing.T) {
	lat, lon := Interpolate(0, 0, 1, 2, 0.25)
	if lat != 0.25 || lon != 0.5 {
		t.Errorf("expected (0.25, 0.5), got (%f, %f)", lat, lon)
	}
}
