package pipeline

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Warning type constants
const (
	WarningMarkerUnresolved = "marker_unresolved"
	WarningEntryUnassigned  = "entry_unassigned"
	WarningNoTimestamp      = "coordinate_no_timestamp"
	WarningEmptyTrace       = "empty_trace"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects soft-degradation events during a pipeline run
// and outputs consolidated summaries instead of one log line per event.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// AddMany records n occurrences of a warning type at once, for events
// counted in bulk by a pipeline stage.
func (w *WarningAggregator) AddMany(warningType string, n int) {
	if n <= 0 {
		return
	}
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{}
	}
	w.warnings[warningType].count += n
}

// Count returns how many occurrences of a warning type were recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(routeName string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		log.Warn().
			Str("route", routeName).
			Str("warning", warningType).
			Int("occurrences", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msg(describeWarning(warningType))
	}
}

// describeWarning creates a human-readable warning message
func describeWarning(warningType string) string {
	switch warningType {
	case WarningMarkerUnresolved:
		return "Markers with neither an onspot nor a detectedAt observation. Building artifact without coordinates for them"
	case WarningEntryUnassigned:
		return "Timetable entries left without coordinates after matching. Visible downstream as missing data"
	case WarningNoTimestamp:
		return "Coordinates without timestamps excluded from stop detection"
	case WarningEmptyTrace:
		return "Recording has no coordinates. Building artifact from the timetable skeleton only"
	default:
		return "Unknown issue. Building artifact with fallback behavior"
	}
}
