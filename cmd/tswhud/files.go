package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/hcfairbanks/tsw-hud-project-sub000/formatter"
	"github.com/hcfairbanks/tsw-hud-project-sub000/pipeline"
	"github.com/hcfairbanks/tsw-hud-project-sub000/route"
)

// readDocument loads and structurally validates one recording file.
func readDocument(path string) (route.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return route.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := route.ParseDocument(data)
	if err != nil {
		return route.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// outputPath derives the artifact path from the recording path.
func outputPath(path, suffix string) string {
	return strings.TrimSuffix(path, ".json") + suffix
}

// reconcileFiles runs the pipeline over each file. Pipeline runs share no
// state, so distinct files reconcile in parallel.
func reconcileFiles(paths []string, opts pipeline.Options, suffix string, indent bool, workers int) error {
	p := pool.New().WithErrors().WithMaxGoroutines(workers)

	for _, path := range paths {
		p.Go(func() error {
			return reconcileFile(path, opts, suffix, indent)
		})
	}

	return p.Wait()
}

func reconcileFile(path string, opts pipeline.Options, suffix string, indent bool) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	artifact, diag := pipeline.NewReconciler(opts).Reconcile(doc)

	out := formatter.BuildJSON(&artifact)
	if indent {
		out = formatter.BuildIndentedJSON(&artifact)
	}

	target := outputPath(path, suffix)
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	log.Info().
		Str("input", path).
		Str("output", target).
		Int("points", diag.OutputPointCount).
		Int("detectedStops", diag.DetectedStops).
		Int("unresolvedMarkers", diag.UnresolvedMarkers).
		Int("unassignedEntries", diag.UnassignedEntries).
		Msg("Reconciled recording")

	return nil
}
