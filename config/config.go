// Package config loads the application configuration from YAML, validates
// it, and applies the production defaults for every pipeline tunable.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hcfairbanks/tsw-hud-project-sub000/pipeline"
)

// PipelineConfig contains the reconciliation tolerances. The stop-claim
// proximity radius is fixed and deliberately not exposed here.
type PipelineConfig struct {
	SimplifyEpsilonMeters  float64 `yaml:"simplifyEpsilonMeters" validate:"gte=0"`
	MinStopDurationSeconds int     `yaml:"minStopDurationSeconds" validate:"gte=0"`
	GPSNoiseRadiusMeters   float64 `yaml:"gpsNoiseRadiusMeters" validate:"gte=0"`
	MinPointsForStop       int     `yaml:"minPointsForStop" validate:"gte=0"`
}

// OutputConfig contains artifact serialization settings.
type OutputConfig struct {
	Indent bool   `yaml:"indent"`
	Suffix string `yaml:"suffix"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
	Workers  int            `yaml:"workers" validate:"gte=0"`
}

// Config is the global application configuration.
var Config AppConfig

// Options maps the configured tunables onto pipeline options.
func (c AppConfig) Options() pipeline.Options {
	return pipeline.Options{
		SimplifyEpsilonMeters:  c.Pipeline.SimplifyEpsilonMeters,
		MinStopDurationSeconds: c.Pipeline.MinStopDurationSeconds,
		GPSNoiseRadiusMeters:   c.Pipeline.GPSNoiseRadiusMeters,
		MinPointsForStop:       c.Pipeline.MinPointsForStop,
	}
}

// LoadAppConfig loads and validates the application configuration. With an
// explicit path the file must exist; with an empty path the default
// locations are tried and a missing file just means defaults.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "./configs/config.yml"}
	if path != "" {
		paths = []string{path}
	}

	var data []byte
	var err error
	found := false
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			found = true
			break
		}
	}
	if !found {
		if path != "" {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		Config = defaults(AppConfig{})
		return nil
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	cfg = defaults(cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	Config = cfg
	return nil
}

// defaults fills unset values with the production defaults.
func defaults(cfg AppConfig) AppConfig {
	base := pipeline.DefaultOptions()
	if cfg.Pipeline.SimplifyEpsilonMeters == 0 {
		cfg.Pipeline.SimplifyEpsilonMeters = base.SimplifyEpsilonMeters
	}
	if cfg.Pipeline.MinStopDurationSeconds == 0 {
		cfg.Pipeline.MinStopDurationSeconds = base.MinStopDurationSeconds
	}
	if cfg.Pipeline.GPSNoiseRadiusMeters == 0 {
		cfg.Pipeline.GPSNoiseRadiusMeters = base.GPSNoiseRadiusMeters
	}
	if cfg.Pipeline.MinPointsForStop == 0 {
		cfg.Pipeline.MinPointsForStop = base.MinPointsForStop
	}
	if cfg.Output.Suffix == "" {
		cfg.Output.Suffix = ".route.json"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	return cfg
}
