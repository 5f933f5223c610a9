package pipeline

import (
	"time"

	"github.com/hcfairbanks/tsw-hud-project-sub000/geo"
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// StopDetector discovers dwell episodes (station stops, signal holds)
// purely from spatial/temporal clustering of the raw trace, independent of
// any marker or timetable data. It is used for recordings where position
// events were not explicitly tagged.
type StopDetector struct {
	// NoiseRadiusMeters is the expected GPS noise radius; cluster
	// admission uses twice this value.
	NoiseRadiusMeters float64

	// MinPoints is both the minimum cluster size and the minimum number
	// of timestamped points for detection to run at all.
	MinPoints int

	// MinDuration is the minimum time span of an emitted cluster.
	MinDuration time.Duration
}

type timedPoint struct {
	index int
	lat   float64
	lon   float64
	at    time.Time
}

// Detect performs a single left-to-right pass over the trace and returns
// the detected stops plus the number of coordinates excluded for lacking a
// timestamp. With fewer timestamped points than MinPoints it fails soft
// and returns no stops.
//
// A candidate cluster grows from the current point; each subsequent point
// is admitted while its distance to the running centroid stays within
// 2x NoiseRadiusMeters. When a point fails admission the cluster closes
// and is emitted if it has at least MinPoints members spanning at least
// MinDuration. The scan resumes after a consumed cluster; a rejected
// cluster start is never retried, the scan just advances one point. That
// can under-detect very short stops adjacent to a rejected cluster, which
// downstream matching tolerances absorb.
func (d StopDetector) Detect(coords []route.Coordinate) ([]route.Stop, int) {
	pts := make([]timedPoint, 0, len(coords))
	missing := 0
	for i, c := range coords {
		t, ok := c.Time()
		if !ok {
			missing++
			continue
		}
		pts = append(pts, timedPoint{index: i, lat: c.Latitude, lon: c.Longitude, at: t})
	}
	if len(pts) < d.MinPoints {
		return nil, missing
	}

	admitRadius := 2 * d.NoiseRadiusMeters
	var stops []route.Stop

	i := 0
	for i < len(pts) {
		sumLat := pts[i].lat
		sumLon := pts[i].lon
		n := 1

		j := i + 1
		for j < len(pts) {
			centLat := sumLat / float64(n)
			centLon := sumLon / float64(n)
			if geo.Haversine(pts[j].lat, pts[j].lon, centLat, centLon) > admitRadius {
				break
			}
			sumLat += pts[j].lat
			sumLon += pts[j].lon
			n++
			j++
		}

		span := pts[j-1].at.Sub(pts[i].at)
		if n >= d.MinPoints && span >= d.MinDuration {
			stops = append(stops, route.Stop{
				StartIndex:      pts[i].index,
				EndIndex:        pts[j-1].index,
				StartTime:       pts[i].at,
				EndTime:         pts[j-1].at,
				DurationSeconds: span.Seconds(),
				Centroid: route.LatLon{
					Latitude:  sumLat / float64(n),
					Longitude: sumLon / float64(n),
				},
				PointCount: n,
			})
			i = j
		} else {
			i++
		}
	}

	return stops, missing
}
