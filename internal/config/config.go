package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds gonormals settings. Command line flags override it.
type Config struct {
	// Mode is "fast" or "stable"
	Mode string `yaml:"mode"`

	// Fallback replaces zero-area normals in fast mode
	Fallback [3]float64 `yaml:"fallback"`

	// Precision is 32 or 64 bit coordinates
	Precision int `yaml:"precision"`

	// Scheduling
	ParallelThreshold int `yaml:"parallel_threshold"`
	Workers           int `yaml:"workers"`

	// ToleranceDegrees is the largest angle at which a stored facet normal
	// still counts as matching
	ToleranceDegrees float64 `yaml:"tolerance_degrees"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Mode:              "fast",
		Precision:         64,
		ParallelThreshold: 10000,
		Workers:           0,
		ToleranceDegrees:  1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.Mode {
	case "fast", "stable":
	default:
		return fmt.Errorf("mode must be fast or stable, got %q", c.Mode)
	}
	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64, got %d", c.Precision)
	}
	if c.ToleranceDegrees < 0 || c.ToleranceDegrees > 180 {
		return fmt.Errorf("tolerance_degrees must be within [0, 180], got %g", c.ToleranceDegrees)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
