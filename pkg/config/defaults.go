package config

import (
	"strings"

	"github.com/jnavila/curtin/pkg/gpg"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyGPGDefaults(&cfg.GPG)
	applyStorageDefaults(&cfg.Storage)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyGPGDefaults sets key resolver defaults.
func applyGPGDefaults(cfg *gpg.Config) {
	if cfg.Keyserver == "" {
		cfg.Keyserver = gpg.DefaultKeyserver
	}
}

// applyStorageDefaults sets storage defaults.
//
// The default action list is empty. A default format action would destroy
// data on whatever device it named, so actions are only ever explicit.
func applyStorageDefaults(cfg *StorageConfig) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	// Initialize the action list if nil
	if cfg.Config == nil {
		cfg.Config = []map[string]any{}
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
