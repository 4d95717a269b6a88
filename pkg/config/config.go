// Package config loads and validates the ramfs configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (RAMFS_*)
//  2. Configuration file (YAML or TOML)
//  3. Default values
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete ramfs configuration.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Engine contains the filesystem engine limits
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`

	// Metrics controls the optional Prometheus endpoint
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Seed describes the initial tree created at startup
	Seed SeedConfig `mapstructure:"seed" yaml:"seed"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" yaml:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" yaml:"output" validate:"required"`
}

// EngineConfig contains the engine limits fixed at initialization time.
type EngineConfig struct {
	// Capacity is the fixed node table size (identifier range [1, capacity))
	Capacity int `mapstructure:"capacity" yaml:"capacity" validate:"required,gt=1"`

	// RootID is the distinguished root identifier
	// Must be below Capacity (checked by a custom rule)
	RootID uint32 `mapstructure:"root_id" yaml:"root_id" validate:"required,gte=1"`

	// RootMode holds the root directory permission bits
	RootMode uint32 `mapstructure:"root_mode" yaml:"root_mode" validate:"lte=511"` // 511 = 0777 in decimal

	// MaxNameLen is the maximum entry name length in bytes
	MaxNameLen int `mapstructure:"max_name_len" yaml:"max_name_len" validate:"required,gt=0"`

	// MaxFileSize bounds content buffer growth in bytes (0 = unlimited)
	MaxFileSize uint64 `mapstructure:"max_file_size" yaml:"max_file_size"`
}

// MetricsConfig controls the optional Prometheus metrics endpoint.
type MetricsConfig struct {
	// Enabled turns on metrics collection and the /metrics endpoint
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Listen is the host:port the metrics endpoint binds to
	Listen string `mapstructure:"listen" yaml:"listen" validate:"omitempty,hostname_port"`
}

// SeedConfig describes the initial tree created at startup.
//
// Entries are free-form maps decoded per-entry by ParseSeedEntries, so a
// malformed entry can be reported with its index instead of failing the
// whole config load.
type SeedConfig struct {
	// Enabled turns seeding on
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Entries lists the objects to create, in order
	Entries []map[string]any `mapstructure:"entries" yaml:"entries"`
}

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: Path to config file (empty string uses default location)
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: Configuration loading or validation error
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the RAMFS_ prefix and underscores
	// Example: RAMFS_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("RAMFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found is acceptable - use defaults
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to the
// current directory if the home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ramfs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "ramfs")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
