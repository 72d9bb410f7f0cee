// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Field        FieldConfig        `yaml:"field"`
	Cycle        CycleConfig        `yaml:"cycle"`
	Run          RunConfig          `yaml:"run"`
	Introduction IntroductionConfig `yaml:"introduction"`
	Pacing       PacingConfig       `yaml:"pacing"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
}

// FieldConfig holds grid dimensions.
type FieldConfig struct {
	Depth int `yaml:"depth"` // Rows
	Width int `yaml:"width"` // Columns
}

// CycleConfig holds day/night cycle parameters.
type CycleConfig struct {
	Length int `yaml:"length"` // Ticks per full day/night cycle
}

// RunConfig holds run-length parameters.
type RunConfig struct {
	Steps int `yaml:"steps"` // Default number of ticks for a long run
}

// IntroductionConfig holds external-introduction parameters.
// Introduction spawns animals from outside the visible ecosystem.
type IntroductionConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"` // Minimum cycle progress before introductions start
	Attempts  int     `yaml:"attempts"`  // Independent spawn trials per tick
}

// PacingConfig holds the cosmetic inter-tick delay.
type PacingConfig struct {
	DelayMS int `yaml:"delay_ms"` // 0 disables pacing entirely
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"` // Ticks per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Keep a copy of the default field size for the validation fallback
	defaultField := cfg.Field

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.validate(defaultField)

	return cfg, nil
}

// validate repairs invalid values. A grid with non-positive extent is never
// produced; dimensions fall back to the embedded defaults.
func (c *Config) validate(defaultField FieldConfig) {
	if c.Field.Depth <= 0 || c.Field.Width <= 0 {
		slog.Warn("field dimensions must be greater than zero, using defaults",
			"depth", c.Field.Depth,
			"width", c.Field.Width,
			"default_depth", defaultField.Depth,
			"default_width", defaultField.Width,
		)
		c.Field = defaultField
	}
	if c.Cycle.Length <= 0 {
		c.Cycle.Length = 500
	}
	if c.Introduction.Attempts < 0 {
		c.Introduction.Attempts = 0
	}
	if c.Telemetry.WindowTicks < 1 {
		c.Telemetry.WindowTicks = 1
	}
	if c.Pacing.DelayMS < 0 {
		c.Pacing.DelayMS = 0
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
