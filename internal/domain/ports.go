package domain

// FileSystem is the storage the copier reads sources from and writes
// destinations to.
type FileSystem interface {
	// MkdirAll creates a directory and any missing parents.
	// It succeeds if the directory already exists.
	MkdirAll(path string) error

	// Exists reports whether path exists. A non-nil error means the
	// answer is unknown (e.g. permission denied on a parent).
	Exists(path string) (bool, error)

	// CopyFile copies contents and modification time from src to dst,
	// overwriting dst if it exists and creating its parent directory.
	CopyFile(src, dst string) error
}

// Reporter receives progress from a copy run as it happens.
type Reporter interface {
	// Start is called once the destination root is ready.
	Start()

	// Outcome is called after each mapping entry is processed.
	Outcome(o Outcome)

	// Summary is called last with every configured destination.
	Summary(destinations []string)
}

// ManifestLoader reads a manifest from a file.
type ManifestLoader interface {
	Load(path string) (*Manifest, error)
}

// ManifestWriter writes a manifest to a file.
type ManifestWriter interface {
	// Save encodes m into path. An existing file is only replaced when
	// overwrite is set; otherwise ErrManifestExists is returned.
	Save(path string, m *Manifest, overwrite bool) error
}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// ConfigManager manages the project config file.
type ConfigManager interface {
	// GetConfigInfo returns the config file path and content.
	GetConfigInfo() ConfigInfo

	// InitConfig writes cfg. Returns ErrConfigExists if the file exists
	// and overwrite is false.
	InitConfig(cfg *Config, overwrite bool) error
}

// IgnoreChecker reports whether a project-relative path is excluded from
// version control.
type IgnoreChecker interface {
	IsIgnored(path string, isDir bool) (bool, error)
}

// NopReporter discards all progress.
type NopReporter struct{}

// Start does nothing.
func (NopReporter) Start() {}

// Outcome does nothing.
func (NopReporter) Outcome(Outcome) {}

// Summary does nothing.
func (NopReporter) Summary([]string) {}
