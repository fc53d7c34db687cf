// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sagesearch/copy-assets/internal/domain"
	"github.com/sagesearch/copy-assets/internal/infra/config"
	"github.com/sagesearch/copy-assets/internal/infra/git"
	"github.com/sagesearch/copy-assets/internal/infra/localfs"
	"github.com/sagesearch/copy-assets/internal/infra/logging"
	"github.com/sagesearch/copy-assets/internal/infra/manifest"
	"github.com/sagesearch/copy-assets/internal/infra/memfs"
	"github.com/sagesearch/copy-assets/internal/usecase"
)

// Options carries command-line overrides into New.
// Empty strings mean "not set".
type Options struct {
	Stderr       io.Writer // Diagnostic output (defaults to os.Stderr)
	WorkDir      string    // Directory the command was started from
	Root         string    // Project root override
	ManifestPath string    // Manifest file override
	LogLevel     string    // Log level override
	DryRun       bool      // Keep writes in memory
}

// Config holds the resolved application settings.
type Config struct {
	ProjectRoot  string // Directory relative manifest paths are resolved against
	ManifestPath string // Empty means the built-in manifest
	LogLevel     string
	DryRun       bool
	Color        bool
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	FS             domain.FileSystem
	Manifests      domain.ManifestLoader
	ManifestWriter domain.ManifestWriter
	ConfigLoader   domain.ConfigLoader
	ConfigManager  domain.ConfigManager
	Ignores        domain.IgnoreChecker // nil outside a git worktree

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New resolves the project root, loads copy-assets.toml and wires the
// filesystem, manifest loader and logger.
//
// Precedence for every setting is: option, config file, default.
// Without a Root option the enclosing git worktree root is used, falling
// back to WorkDir.
func New(opts Options) (*Container, error) {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	var gitClient *git.Client
	root := opts.Root
	if root == "" {
		client, err := git.NewClient(opts.WorkDir)
		switch {
		case err == nil:
			gitClient = client
			root = client.RepoRoot()
		case errors.Is(err, domain.ErrNotGitRepository):
			root = opts.WorkDir
		default:
			return nil, err
		}
	} else if !filepath.IsAbs(root) {
		root = filepath.Join(opts.WorkDir, root)
	}
	root = filepath.Clean(root)

	configLoader := config.NewLoader(root)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	level := appConfig.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	if err := logging.ValidateLevel(level); err != nil {
		return nil, err
	}
	logger := logging.New(opts.Stderr, logging.ParseLevel(level))

	manifestPath := appConfig.Manifest
	if opts.ManifestPath != "" {
		manifestPath = opts.ManifestPath
		if !filepath.IsAbs(manifestPath) {
			manifestPath = filepath.Join(opts.WorkDir, manifestPath)
		}
	}

	var fs domain.FileSystem
	if opts.DryRun {
		fs = memfs.NewDryRun(root)
	} else {
		fs = localfs.New(root)
	}

	manifests := manifest.NewLoader()
	c := &Container{
		FS:             fs,
		Manifests:      manifests,
		ManifestWriter: manifests,
		ConfigLoader:   configLoader,
		ConfigManager:  config.NewManager(root),
		Logger:         logger,
		Config: Config{
			ProjectRoot:  root,
			ManifestPath: manifestPath,
			LogLevel:     level,
			DryRun:       opts.DryRun,
			Color:        appConfig.ColorEnabled(),
		},
	}
	// .gitignore patterns are relative to the worktree root, so they only
	// apply when the project root is that root.
	if gitClient != nil {
		c.Ignores = gitClient
	}

	logger.Debug("container ready", "root", root, "manifest", manifestPath, "dry_run", opts.DryRun)
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, fs domain.FileSystem, manifests domain.ManifestLoader, logger *slog.Logger) *Container {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Container{
		FS:        fs,
		Manifests: manifests,
		Logger:    logger,
		Config:    cfg,
	}
}

// LoadManifest returns the configured manifest, or the built-in one when no
// manifest path is set.
func (c *Container) LoadManifest() (*domain.Manifest, error) {
	if c.Config.ManifestPath == "" {
		return domain.DefaultManifest(), nil
	}
	m, err := c.Manifests.Load(c.Config.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	return m, nil
}

// UseCase factory methods

// CopyAssetsUseCase returns a new CopyAssets use case reporting to reporter.
func (c *Container) CopyAssetsUseCase(reporter domain.Reporter) *usecase.CopyAssets {
	uc := usecase.NewCopyAssets(c.FS, reporter, c.Logger)
	if c.Ignores != nil {
		uc = uc.WithIgnoreChecker(c.Ignores)
	}
	return uc
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.ManifestWriter)
}
