// Package config holds all statlab configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all statlab configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Dataset configuration
	Dataset DatasetConfig `yaml:"dataset"`

	// Simulation defaults
	Simulation SimulationConfig `yaml:"simulation"`

	// Permutation test defaults
	Permutation PermutationConfig `yaml:"permutation"`

	// Run-history store
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig locates the study data.
type DatasetConfig struct {
	Path            string `yaml:"path"`
	WeightColumn    string `yaml:"weight_column"`
	IndicatorColumn string `yaml:"indicator_column"`
}

// SimulationConfig sets Monte Carlo defaults.
type SimulationConfig struct {
	Replications int   `yaml:"replications"`
	SampleSize   int   `yaml:"sample_size"`
	Workers      int   `yaml:"workers"` // 0 means one per CPU
	Seed         int64 `yaml:"seed"`
}

// PermutationConfig sets permutation test defaults.
type PermutationConfig struct {
	Permutations int    `yaml:"permutations"`
	Alternative  string `yaml:"alternative"` // two-sided, greater, less
}

// StoreConfig locates the run-history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures the categorized debug file logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "statlab",
		Version: "1.0.0",

		Dataset: DatasetConfig{
			Path:            "data/birthwt.txt",
			WeightColumn:    "bwt",
			IndicatorColumn: "smoke",
		},

		Simulation: SimulationConfig{
			Replications: 1000,
			SampleSize:   30,
			Workers:      0,
			Seed:         42,
		},

		Permutation: PermutationConfig{
			Permutations: 2000,
			Alternative:  "two-sided",
		},

		Store: StoreConfig{
			Path: filepath.Join(".statlab", "runs.db"),
		},

		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("STATLAB_DATA"); path != "" {
		c.Dataset.Path = path
	}
	if path := os.Getenv("STATLAB_DB"); path != "" {
		c.Store.Path = path
	}
	if seed := os.Getenv("STATLAB_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Simulation.Seed = v
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset path not configured")
	}
	if c.Dataset.WeightColumn == "" || c.Dataset.IndicatorColumn == "" {
		return fmt.Errorf("dataset weight and indicator columns must be named")
	}
	if c.Simulation.Replications <= 0 {
		return fmt.Errorf("replications must be positive, got %d", c.Simulation.Replications)
	}
	if c.Simulation.SampleSize <= 1 {
		return fmt.Errorf("sample size must be at least 2, got %d", c.Simulation.SampleSize)
	}
	if c.Permutation.Permutations <= 0 {
		return fmt.Errorf("permutations must be positive, got %d", c.Permutation.Permutations)
	}
	switch c.Permutation.Alternative {
	case "two-sided", "greater", "less":
	default:
		return fmt.Errorf("invalid alternative %q", c.Permutation.Alternative)
	}
	return nil
}
