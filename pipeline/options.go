package pipeline

import (
	"time"
)

// Options contains the tunable tolerances for one reconciliation run.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// SimplifyEpsilonMeters is the Ramer-Douglas-Peucker tolerance in
	// real meters, so it has a physically meaningful size regardless of
	// latitude.
	SimplifyEpsilonMeters float64

	// MinStopDurationSeconds is the minimum dwell time span before a
	// detected cluster counts as a stop.
	MinStopDurationSeconds int

	// GPSNoiseRadiusMeters is the expected GPS noise radius. Cluster
	// admission uses twice this value to absorb drift while growing.
	GPSNoiseRadiusMeters float64

	// MinPointsForStop is the minimum cluster size before a detected
	// cluster counts as a stop, and the minimum number of timestamped
	// points for detection to run at all.
	MinPointsForStop int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		SimplifyEpsilonMeters:  1,
		MinStopDurationSeconds: 30,
		GPSNoiseRadiusMeters:   10,
		MinPointsForStop:       10,
	}
}

func (o Options) minStopDuration() time.Duration {
	return time.Duration(o.MinStopDurationSeconds) * time.Second
}
