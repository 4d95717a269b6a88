package config

import "testing"

func TestParseSeedEntries(t *testing.T) {
	cfg := &SeedConfig{
		Enabled: true,
		Entries: []map[string]any{
			{"path": "/docs", "type": "directory"},
			{"path": "/docs/readme.txt", "type": "file", "content": "hello", "mode": 0o600},
		},
	}

	entries, err := ParseSeedEntries(cfg)
	if err != nil {
		t.Fatalf("parse should succeed, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Type != "directory" || entries[0].Path != "/docs" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Content != "hello" {
		t.Errorf("expected content preserved, got %q", entries[1].Content)
	}
	if entries[1].Mode != 0o600 {
		t.Errorf("expected mode 0600, got %o", entries[1].Mode)
	}
}

func TestParseSeedEntriesRejectsRelativePath(t *testing.T) {
	cfg := &SeedConfig{
		Entries: []map[string]any{
			{"path": "docs", "type": "directory"},
		},
	}

	if _, err := ParseSeedEntries(cfg); err == nil {
		t.Error("expected error for relative path")
	}
}

func TestParseSeedEntriesRejectsRootPath(t *testing.T) {
	cfg := &SeedConfig{
		Entries: []map[string]any{
			{"path": "/", "type": "directory"},
		},
	}

	if _, err := ParseSeedEntries(cfg); err == nil {
		t.Error("expected error for root path")
	}
}

func TestParseSeedEntriesRejectsUnknownType(t *testing.T) {
	cfg := &SeedConfig{
		Entries: []map[string]any{
			{"path": "/dev/null", "type": "device"},
		},
	}

	if _, err := ParseSeedEntries(cfg); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestParseSeedEntriesRejectsDirectoryContent(t *testing.T) {
	cfg := &SeedConfig{
		Entries: []map[string]any{
			{"path": "/docs", "type": "directory", "content": "nope"},
		},
	}

	if _, err := ParseSeedEntries(cfg); err == nil {
		t.Error("expected error for directory with content")
	}
}

func TestParseSeedEntriesRejectsUnknownKeys(t *testing.T) {
	cfg := &SeedConfig{
		Entries: []map[string]any{
			{"path": "/f", "type": "file", "contnet": "typo"},
		},
	}

	if _, err := ParseSeedEntries(cfg); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestValidateRunsSeedParsing(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Seed.Enabled = true
	cfg.Seed.Entries = []map[string]any{
		{"path": "relative", "type": "file"},
	}

	if err := Validate(cfg); err == nil {
		t.Error("expected validation to reject bad seed entries")
	}
}
