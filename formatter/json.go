// Package formatter serializes route artifacts for storage and transport.
package formatter

import (
	"encoding/json"

	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// BuildJSON serializes a route artifact to compact JSON.
func BuildJSON(a *route.Artifact) []byte {
	b, _ := json.Marshal(a)
	return b
}

// BuildIndentedJSON serializes a route artifact to indented JSON, for
// outputs meant to be read by people.
func BuildIndentedJSON(a *route.Artifact) []byte {
	b, _ := json.MarshalIndent(a, "", "  ")
	return b
}
