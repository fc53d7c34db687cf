package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default locations used by the built-in manifest.
const (
	DefaultSourceDir = ".prompt_attachments"
	DefaultDestRoot  = "assets/images"
)

// MappingEntry describes one file to copy.
type MappingEntry struct {
	Source      string `toml:"source" yaml:"source"`
	Destination string `toml:"destination" yaml:"destination"`
}

// Manifest is the ordered set of mapping entries for one run.
// Every destination must lie under DestRoot.
type Manifest struct {
	DestRoot string         `toml:"dest_root" yaml:"dest_root"`
	Entries  []MappingEntry `toml:"entries" yaml:"entries"`
}

// DefaultManifest returns the built-in settings profile images mapping.
func DefaultManifest() *Manifest {
	src := func(name string) string { return filepath.Join(DefaultSourceDir, name) }
	dst := func(name string) string { return filepath.Join(DefaultDestRoot, name) }
	return &Manifest{
		DestRoot: DefaultDestRoot,
		Entries: []MappingEntry{
			{Source: src("d0d64a44-b202-43a2-ab48-046599552efd.png"), Destination: dst("settings_profile_1.png")},
			{Source: src("1f31b1d4-20ab-4560-91b6-06efd4704580.png"), Destination: dst("settings_profile_2.png")},
			{Source: src("b4306869-a24c-4b1d-92fc-bc0eeff3acc6.png"), Destination: dst("settings_profile_3.png")},
		},
	}
}

// Destinations returns every destination path in manifest order.
func (m *Manifest) Destinations() []string {
	dsts := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		dsts = append(dsts, e.Destination)
	}
	return dsts
}

// Validate checks that the manifest is non-empty, that every entry has two
// distinct paths, and that destinations are unique and lie under DestRoot.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.DestRoot) == "" {
		return fmt.Errorf("%w: dest_root is empty", ErrInvalidManifest)
	}
	if len(m.Entries) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalidManifest)
	}

	root := filepath.Clean(m.DestRoot)
	seen := make(map[string]int, len(m.Entries))
	for i, e := range m.Entries {
		if strings.TrimSpace(e.Source) == "" {
			return fmt.Errorf("%w: entry %d has an empty source", ErrInvalidManifest, i+1)
		}
		if strings.TrimSpace(e.Destination) == "" {
			return fmt.Errorf("%w: entry %d has an empty destination", ErrInvalidManifest, i+1)
		}

		dst := filepath.Clean(e.Destination)
		if filepath.Clean(e.Source) == dst {
			return fmt.Errorf("%w: entry %d copies %q onto itself", ErrInvalidManifest, i+1, e.Source)
		}
		if !IsUnder(root, dst) {
			return fmt.Errorf("%w: destination %q is outside %q", ErrInvalidManifest, e.Destination, m.DestRoot)
		}
		if prev, ok := seen[dst]; ok {
			return fmt.Errorf("%w: entries %d and %d share destination %q", ErrInvalidManifest, prev, i+1, e.Destination)
		}
		seen[dst] = i + 1
	}
	return nil
}

// IsUnder reports whether path lies strictly inside root.
// Both paths are compared lexically after cleaning.
func IsUnder(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}
