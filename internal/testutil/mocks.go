// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/sagesearch/copy-assets/internal/domain"
)

// MockFileSystem is a test double for domain.FileSystem.
// Fields are ordered to minimize memory padding.
type MockFileSystem struct {
	Files     map[string][]byte // path -> content
	Dirs      map[string]bool
	CopyErrs  map[string]error // src -> error returned by CopyFile
	ExistErrs map[string]error // path -> error returned by Exists
	MkdirErr  error
	Copies    [][2]string // (src, dst) pairs in call order
	mu        sync.Mutex
}

// NewMockFileSystem creates a new MockFileSystem with initialized maps.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:     make(map[string][]byte),
		Dirs:      make(map[string]bool),
		CopyErrs:  make(map[string]error),
		ExistErrs: make(map[string]error),
	}
}

// MkdirAll records the directory and its parents.
func (m *MockFileSystem) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	for p := filepath.Clean(path); p != "." && p != string(filepath.Separator); p = filepath.Dir(p) {
		m.Dirs[p] = true
	}
	return nil
}

// Exists reports whether a file or directory was registered at path.
func (m *MockFileSystem) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.ExistErrs[path]; ok {
		return false, err
	}
	_, isFile := m.Files[path]
	return isFile || m.Dirs[filepath.Clean(path)], nil
}

// CopyFile copies the registered content of src to dst.
func (m *MockFileSystem) CopyFile(src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Copies = append(m.Copies, [2]string{src, dst})
	if err, ok := m.CopyErrs[src]; ok {
		return err
	}
	data, ok := m.Files[src]
	if !ok {
		return &fs.PathError{Op: "open", Path: src, Err: fs.ErrNotExist}
	}
	m.Files[dst] = append([]byte(nil), data...)
	return nil
}

// RecordingReporter is a test double for domain.Reporter.
type RecordingReporter struct {
	Outcomes     []domain.Outcome
	Destinations []string
	Events       []string // "start", outcome kinds, "summary" in call order
	Started      bool
}

// Start records the call.
func (r *RecordingReporter) Start() {
	r.Started = true
	r.Events = append(r.Events, "start")
}

// Outcome records the outcome.
func (r *RecordingReporter) Outcome(o domain.Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Events = append(r.Events, string(o.Kind))
}

// Summary records the destinations.
func (r *RecordingReporter) Summary(destinations []string) {
	r.Destinations = append([]string(nil), destinations...)
	r.Events = append(r.Events, "summary")
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr error
	Written *domain.Config // last config passed to InitConfig
	Info    domain.ConfigInfo
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetConfigInfo returns Info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records cfg and marks the file as existing.
func (m *MockConfigManager) InitConfig(cfg *domain.Config, overwrite bool) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Info.Exists && !overwrite {
		return domain.ErrConfigExists
	}
	m.Written = cfg
	m.Info.Exists = true
	return nil
}

// MockManifestWriter is a test double for domain.ManifestWriter.
type MockManifestWriter struct {
	Saved   map[string]*domain.Manifest
	SaveErr error
}

// Ensure MockManifestWriter implements domain.ManifestWriter.
var _ domain.ManifestWriter = (*MockManifestWriter)(nil)

// Save records m under path.
func (m *MockManifestWriter) Save(path string, manifest *domain.Manifest, overwrite bool) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Saved == nil {
		m.Saved = make(map[string]*domain.Manifest)
	}
	if _, ok := m.Saved[path]; ok && !overwrite {
		return domain.ErrManifestExists
	}
	m.Saved[path] = manifest
	return nil
}
