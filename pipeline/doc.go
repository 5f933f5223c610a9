// Package pipeline is the raw-trace reconciliation core: it turns a noisy,
// variable-density GPS trace plus independently-detected station markers
// and an authored timetable into a compact route artifact.
//
// # Overview
//
// One Reconcile call runs four stages, in order:
//   - marker resolution: each marker's reference observation is projected
//     onto the trace (nearest point, then residual distance walked forward)
//   - stop detection: dwell clusters discovered from timestamps, only for
//     recordings made in automatic mode
//   - timetable matching: position sources bound to timetable entries in
//     route order, user coordinates > detected stops > named markers
//   - path simplification: Ramer-Douglas-Peucker over the trace, last, so
//     position resolution sees the full-density data
//
// # Usage
//
//	doc, err := route.ParseDocument(data)
//	if err != nil {
//	    // malformed input document - the only fatal condition
//	}
//
//	r := pipeline.NewReconciler(pipeline.DefaultOptions())
//	artifact, diag := r.Reconcile(doc)
//
//	out := formatter.BuildJSON(&artifact)
//
// Missing data never fails a run. Unresolvable markers, undetectable
// stops, and exhausted position sources all degrade to omitted coordinates
// and diagnostics counts.
//
// Each call deep-copies its input and shares no state with other calls, so
// distinct recordings reconcile safely in parallel.
package pipeline
