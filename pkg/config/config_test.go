package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected default log level INFO, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected default log format text, got %s", cfg.Logging.Format)
	}
	if cfg.Engine.Capacity != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, cfg.Engine.Capacity)
	}
	if cfg.Engine.RootID != DefaultRootID {
		t.Errorf("expected default root id %d, got %d", DefaultRootID, cfg.Engine.RootID)
	}
	if cfg.Engine.MaxNameLen != DefaultMaxNameLen {
		t.Errorf("expected default max name len %d, got %d", DefaultMaxNameLen, cfg.Engine.MaxNameLen)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
	if cfg.Metrics.Listen != DefaultMetricsAddr {
		t.Errorf("expected default metrics addr %s, got %s", DefaultMetricsAddr, cfg.Metrics.Listen)
	}
}

func TestApplyDefaultsNormalizesLogLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "debug"

	ApplyDefaults(cfg)

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected normalized level DEBUG, got %s", cfg.Logging.Level)
	}
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Engine.Capacity = 64
	cfg.Engine.RootID = 2

	ApplyDefaults(cfg)

	if cfg.Engine.Capacity != 64 {
		t.Errorf("expected capacity 64 preserved, got %d", cfg.Engine.Capacity)
	}
	if cfg.Engine.RootID != 2 {
		t.Errorf("expected root id 2 preserved, got %d", cfg.Engine.RootID)
	}
	if cfg.Engine.MaxNameLen != DefaultMaxNameLen {
		t.Errorf("expected default max name len filled in, got %d", cfg.Engine.MaxNameLen)
	}
}

func TestValidateDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "VERBOSE"

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for invalid log level")
	}
}

func TestValidateRejectsRootIDOutsideCapacity(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Engine.Capacity = 100
	cfg.Engine.RootID = 100

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for root_id >= capacity")
	}

	cfg.Engine.RootID = 99
	if err := Validate(cfg); err != nil {
		t.Errorf("root_id below capacity should validate, got %v", err)
	}
}

func TestValidateRejectsBadMetricsListen(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Listen = "not a listen address"

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for malformed listen address")
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	// Point XDG at an empty directory so no real config file interferes.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load without config file should succeed, got %v", err)
	}
	if cfg.Engine.Capacity != DefaultCapacity {
		t.Errorf("expected default capacity, got %d", cfg.Engine.Capacity)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
logging:
  level: debug
engine:
  capacity: 128
  root_id: 5
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load should succeed, got %v", err)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected level DEBUG, got %s", cfg.Logging.Level)
	}
	if cfg.Engine.Capacity != 128 {
		t.Errorf("expected capacity 128, got %d", cfg.Engine.Capacity)
	}
	if cfg.Engine.RootID != 5 {
		t.Errorf("expected root id 5, got %d", cfg.Engine.RootID)
	}
	// Fields the file omits fall back to defaults.
	if cfg.Engine.MaxNameLen != DefaultMaxNameLen {
		t.Errorf("expected default max name len, got %d", cfg.Engine.MaxNameLen)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
engine:
  capacity: 10
  root_id: 10
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for root_id >= capacity")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("engine: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RAMFS_LOGGING_LEVEL", "ERROR")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load should succeed, got %v", err)
	}
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("expected env override ERROR, got %s", cfg.Logging.Level)
	}
}

func TestDefaultYAMLRoundtrips(t *testing.T) {
	data, err := DefaultYAML()
	if err != nil {
		t.Fatalf("DefaultYAML failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("DefaultYAML returned empty document")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading the default document should succeed, got %v", err)
	}
	if cfg.Engine.Capacity != DefaultCapacity {
		t.Errorf("expected default capacity after roundtrip, got %d", cfg.Engine.Capacity)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	expected := filepath.Join("/tmp/xdg", "ramfs", "config.yaml")
	if got := GetDefaultConfigPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}
