package pipeline

import (
	"sort"
	"strings"

	"github.com/hcfairbanks/tsw-hud-project-sub000/geo"
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// stopClaimRadiusMeters is how close a user-positioned timetable entry must
// be to a detected stop for that stop to be claimed on its behalf. Fixed,
// not exposed as configuration.
const stopClaimRadiusMeters = 250.0

// matchStops binds the best-known position source to each timetable entry
// lacking coordinates, in strict index order, never reusing a source.
//
// Detected stops are preferred (direct dwell evidence) and consumed
// ordinally: an index cursor over the stop array plus a claimed bitset,
// never re-sorted by proximity. GPS noise makes proximity matching
// unreliable station-to-station, but route order is reliable. Resolved
// markers are the fallback, matched by normalized name. The final entry,
// if still unassigned, takes the path's last coordinate as a last resort
// (covers terminus dwells shorter than the duration threshold).
//
// Entries are mutated in place. Returns the number of entries left without
// coordinates, visible downstream as missing data rather than a failure.
func matchStops(entries []route.TimetableEntry, stops []route.Stop, markers []route.ResolvedMarker, pathEnd *route.Coordinate) int {
	claimed := make([]bool, len(stops))

	// Entries that already carry user-entered coordinates keep them
	// untouched, but each claims its nearest stop within range so a later
	// automatic assignment cannot reuse it.
	for _, e := range entries {
		if !e.HasCoordinates() {
			continue
		}
		best := -1
		bestDist := stopClaimRadiusMeters
		for i, s := range stops {
			if claimed[i] {
				continue
			}
			d := geo.Haversine(*e.Latitude, *e.Longitude, s.Centroid.Latitude, s.Centroid.Longitude)
			if d <= bestDist {
				bestDist = d
				best = i
			}
		}
		if best >= 0 {
			claimed[best] = true
		}
	}

	// Walk entries in index order, consuming the next unclaimed stop for
	// each entry still lacking coordinates, with name-matched markers as
	// the fallback once stops run out (or detection was skipped).
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].Index < entries[order[b]].Index
	})

	markerUsed := make([]bool, len(markers))
	cursor := 0
	for _, ei := range order {
		e := &entries[ei]
		if e.HasCoordinates() {
			continue
		}

		for cursor < len(stops) && claimed[cursor] {
			cursor++
		}
		if cursor < len(stops) {
			s := stops[cursor]
			claimed[cursor] = true
			cursor++
			lat, lon := s.Centroid.Latitude, s.Centroid.Longitude
			e.Latitude, e.Longitude = &lat, &lon
			continue
		}

		if mi := matchMarkerByName(*e, markers, markerUsed); mi >= 0 {
			markerUsed[mi] = true
			lat, lon := *markers[mi].Latitude, *markers[mi].Longitude
			e.Latitude, e.Longitude = &lat, &lon
		}
	}

	if len(order) > 0 && pathEnd != nil {
		final := &entries[order[len(order)-1]]
		if !final.HasCoordinates() {
			lat, lon := pathEnd.Latitude, pathEnd.Longitude
			final.Latitude, final.Longitude = &lat, &lon
		}
	}

	unassigned := 0
	for _, e := range entries {
		if !e.HasCoordinates() {
			unassigned++
		}
	}
	return unassigned
}

// matchMarkerByName returns the index of the first unused resolved marker
// whose normalized station name equals the entry's API name or
// destination, or -1.
func matchMarkerByName(e route.TimetableEntry, markers []route.ResolvedMarker, used []bool) int {
	apiName := normalizeStationName(e.APIName)
	destination := normalizeStationName(e.Destination)
	for i, m := range markers {
		if used[i] || !m.Resolved() {
			continue
		}
		name := normalizeStationName(m.StationName)
		if name == "" {
			continue
		}
		if name == apiName || name == destination {
			return i
		}
	}
	return -1
}

// normalizeStationName lowercases, collapses whitespace, and treats
// "Platform" and "Track" as interchangeable.
func normalizeStationName(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		if f == "track" {
			fields[i] = "platform"
		}
	}
	return strings.Join(fields, " ")
}
