package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// SeedEntry is one object of the initial tree, decoded from the free-form
// seed entry maps.
//
// Paths are absolute, slash-separated, and must list a directory before
// anything created inside it.
type SeedEntry struct {
	// Path is the absolute location of the object (e.g. "/docs/readme.txt")
	Path string `mapstructure:"path"`

	// Type is "directory" or "file"
	Type string `mapstructure:"type"`

	// Mode holds the permission bits; 0 picks a per-type default
	Mode uint32 `mapstructure:"mode"`

	// Content is the initial file content (files only)
	Content string `mapstructure:"content"`
}

// ParseSeedEntries decodes and validates the raw seed entry maps.
//
// Each entry is decoded individually so errors can name the offending
// index. Unknown keys are rejected to catch typos in config files.
func ParseSeedEntries(cfg *SeedConfig) ([]SeedEntry, error) {
	entries := make([]SeedEntry, 0, len(cfg.Entries))

	for i, raw := range cfg.Entries {
		var entry SeedEntry

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &entry,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, fmt.Errorf("seed.entries[%d]: %w", i, err)
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("seed.entries[%d]: %w", i, err)
		}

		if !strings.HasPrefix(entry.Path, "/") || entry.Path == "/" {
			return nil, fmt.Errorf("seed.entries[%d]: path %q must be absolute and not the root", i, entry.Path)
		}
		switch entry.Type {
		case "directory":
			if entry.Content != "" {
				return nil, fmt.Errorf("seed.entries[%d]: directories cannot have content", i)
			}
		case "file":
		default:
			return nil, fmt.Errorf("seed.entries[%d]: unknown type %q", i, entry.Type)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
