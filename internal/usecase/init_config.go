package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sagesearch/copy-assets/internal/domain"
)

// DefaultManifestFile is the manifest name written by InitConfig when none is given.
const DefaultManifestFile = "copy-assets.manifest.toml"

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	ProjectRoot  string // Directory receiving both files
	ManifestFile string // Manifest path relative to ProjectRoot (default DefaultManifestFile)
	Force        bool   // Overwrite existing files
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	ConfigPath   string
	ManifestPath string
}

// InitConfig writes the built-in mapping to a manifest file and a
// copy-assets.toml that points at it, so the mapping can be edited.
type InitConfig struct {
	configManager  domain.ConfigManager
	manifestWriter domain.ManifestWriter
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager, manifestWriter domain.ManifestWriter) *InitConfig {
	return &InitConfig{
		configManager:  configManager,
		manifestWriter: manifestWriter,
	}
}

// Execute writes the manifest and then the config file.
// Nothing is written when the config file exists and Force is not set.
func (uc *InitConfig) Execute(ctx context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := uc.configManager.GetConfigInfo()
	if info.Exists && !in.Force {
		return nil, fmt.Errorf("%s: %w", info.Path, domain.ErrConfigExists)
	}

	ref := in.ManifestFile
	if ref == "" {
		ref = DefaultManifestFile
	}
	manifestPath := ref
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(in.ProjectRoot, manifestPath)
	}

	if err := uc.manifestWriter.Save(manifestPath, domain.DefaultManifest(), in.Force); err != nil {
		return nil, err
	}

	cfg := domain.NewDefaultConfig()
	cfg.Manifest = filepath.ToSlash(ref)
	if err := uc.configManager.InitConfig(cfg, in.Force); err != nil {
		return nil, err
	}

	return &InitConfigOutput{
		ConfigPath:   info.Path,
		ManifestPath: manifestPath,
	}, nil
}
