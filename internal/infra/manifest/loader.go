// Package manifest loads and saves mapping manifests as TOML or YAML files.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sagesearch/copy-assets/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements domain.ManifestLoader and domain.ManifestWriter.
var (
	_ domain.ManifestLoader = (*Loader)(nil)
	_ domain.ManifestWriter = (*Loader)(nil)
)

// Loader reads and writes manifests on disk. The format is chosen by file
// extension.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, decodes and validates the manifest at path.
// A missing dest_root defaults to domain.DefaultDestRoot.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode parses manifest data in the format named by ext
// (".toml", ".yaml" or ".yml") and validates the result.
// Unknown keys are rejected.
func Decode(ext string, data []byte) (*domain.Manifest, error) {
	var m domain.Manifest

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; Validate reports it as empty.
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, domain.ErrUnsupportedFormat)
	}

	if m.DestRoot == "" {
		m.DestRoot = domain.DefaultDestRoot
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save encodes m in the format named by the extension of path and writes it.
// An existing file is only replaced when overwrite is set.
func (l *Loader) Save(path string, m *domain.Manifest, overwrite bool) error {
	data, err := Encode(filepath.Ext(path), m)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644) //nolint:gosec // Manifests are meant to be committed and shared
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s: %w", path, domain.ErrManifestExists)
	}
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	return f.Close()
}

// Encode renders m in the format named by ext.
func Encode(ext string, m *domain.Manifest) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(m)
	case ".yaml", ".yml":
		return yaml.Marshal(m)
	default:
		return nil, fmt.Errorf("%q: %w", ext, domain.ErrUnsupportedFormat)
	}
}
