package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppConfigDefaultsWithoutFile(t *testing.T) {
	if err := LoadAppConfig(""); err != nil {
		t.Fatalf("missing optional config must not fail: %v", err)
	}

	opts := Config.Options()
	if opts.SimplifyEpsilonMeters != 1 {
		t.Errorf("expected epsilon 1, got %v", opts.SimplifyEpsilonMeters)
	}
	if opts.MinStopDurationSeconds != 30 {
		t.Errorf("expected 30 s stop duration, got %v", opts.MinStopDurationSeconds)
	}
	if opts.GPSNoiseRadiusMeters != 10 {
		t.Errorf("expected 10 m noise radius, got %v", opts.GPSNoiseRadiusMeters)
	}
	if opts.MinPointsForStop != 10 {
		t.Errorf("expected 10 points minimum, got %v", opts.MinPointsForStop)
	}
	if Config.Workers != 4 || Config.Output.Suffix != ".route.json" {
		t.Error("expected output and worker defaults")
	}
}

func TestLoadAppConfigExplicitMissingPath(t *testing.T) {
	if err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected an error for an explicit missing path")
	}
}

func TestLoadAppConfigOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
pipeline:
  simplifyEpsilonMeters: 2.5
  minPointsForStop: 6
output:
  indent: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadAppConfig(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := Config.Options()
	if opts.SimplifyEpsilonMeters != 2.5 {
		t.Errorf("expected epsilon override 2.5, got %v", opts.SimplifyEpsilonMeters)
	}
	if opts.MinPointsForStop != 6 {
		t.Errorf("expected point minimum override 6, got %v", opts.MinPointsForStop)
	}
	// Unset values still get defaults.
	if opts.MinStopDurationSeconds != 30 || opts.GPSNoiseRadiusMeters != 10 {
		t.Error("expected defaults for unset tunables")
	}
	if !Config.Output.Indent {
		t.Error("expected indent override")
	}
}

func TestLoadAppConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "pipeline:\n  simplifyEpsilonMeters: -3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadAppConfig(path); err == nil {
		t.Fatal("expected a validation error for a negative tolerance")
	}
}

func TestLoadAppConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("pipeline: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadAppConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
