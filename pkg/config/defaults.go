package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Default engine limits mirrored here so a config file is optional.
const (
	DefaultCapacity    = 1024
	DefaultRootID      = 1000
	DefaultRootMode    = 0o755
	DefaultMaxNameLen  = 255
	DefaultMaxFileSize = uint64(1 << 30)
	DefaultMetricsAddr = "127.0.0.1:9090"
)

// GetDefaultConfig returns a configuration populated entirely from defaults.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and
// environment variables to fill in any missing values. Zero values are
// replaced with defaults; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyEngineDefaults(&cfg.Engine)
	applyMetricsDefaults(&cfg.Metrics)
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

// applyEngineDefaults sets engine limit defaults.
func applyEngineDefaults(cfg *EngineConfig) {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.RootID == 0 {
		cfg.RootID = DefaultRootID
	}
	if cfg.RootMode == 0 {
		cfg.RootMode = DefaultRootMode
	}
	if cfg.MaxNameLen == 0 {
		cfg.MaxNameLen = DefaultMaxNameLen
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
}

// applyMetricsDefaults sets metrics endpoint defaults.
func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Listen == "" {
		cfg.Listen = DefaultMetricsAddr
	}
}

// DefaultYAML renders the default configuration as a YAML document,
// suitable for writing an initial config file.
func DefaultYAML() ([]byte, error) {
	return yaml.Marshal(GetDefaultConfig())
}
