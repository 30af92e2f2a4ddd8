// Package config loads the dayforge YAML configuration and applies
// environment variable overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the dayforge pipeline.
type Config struct {
	Storage Storage       `yaml:"storage"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging Logging       `yaml:"logging"`
}

// Storage holds paths and policy for data persistence.
type Storage struct {
	// OutputDir is where output artifacts are written.
	OutputDir string `yaml:"output_dir"`
	// Overwrite controls whether re-running a day replaces its artifact.
	// When false the run refuses and fails instead.
	Overwrite bool `yaml:"overwrite"`
	// LedgerPath enables the SQLite run ledger when non-empty. It must
	// point outside OutputDir.
	LedgerPath string `yaml:"ledger_path"`
}

// DatasetConfig controls the shape of the generated dataset.
type DatasetConfig struct {
	// Sensors overrides the default sensor roster when non-empty.
	Sensors []string `yaml:"sensors"`
	// SamplesPerSensor is the number of readings per sensor; 0 means the
	// default of one per hour.
	SamplesPerSensor int `yaml:"samples_per_sensor"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the built-in configuration used when no config file is
// present, so the container can run with zero environment.
func Default() *Config {
	return &Config{
		Storage: Storage{
			OutputDir: "data",
			Overwrite: true,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the YAML configuration file at the given path on top of the
// defaults, then applies environment variable overrides. A missing file is
// not an error: the defaults stand.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Storage.OutputDir = v
	}

	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.Storage.LedgerPath = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
