// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sagesearch/copy-assets/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from copy-assets.toml.
type Loader struct {
	projectRoot string // Directory holding copy-assets.toml
}

// NewLoader creates a new Loader for the given project root.
func NewLoader(projectRoot string) *Loader {
	return &Loader{projectRoot: projectRoot}
}

// Path returns the config file location.
func (l *Loader) Path() string {
	return filepath.Join(l.projectRoot, domain.ConfigFileName)
}

// Load returns the configuration, with values from the file layered over
// the defaults. A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	data, err := os.ReadFile(l.Path())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Decoding into the defaults keeps fields the file does not set.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrConfigDecodeFailed, l.Path(), err)
	}

	if cfg.Manifest != "" && !filepath.IsAbs(cfg.Manifest) {
		cfg.Manifest = filepath.Join(l.projectRoot, cfg.Manifest)
	}
	return cfg, nil
}
