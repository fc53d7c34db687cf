// Package memfs provides an afero-backed implementation of domain.FileSystem.
// It backs --dry-run, where writes land in memory on top of a read-only
// view of the disk, and in-memory tests.
package memfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sagesearch/copy-assets/internal/domain"
	"github.com/spf13/afero"
)

// Ensure FS implements domain.FileSystem.
var _ domain.FileSystem = (*FS)(nil)

// FS wraps an afero.Fs. Relative paths are resolved against root.
type FS struct {
	fs   afero.Fs
	root string
}

// New wraps an existing afero filesystem.
func New(fs afero.Fs, root string) *FS {
	return &FS{fs: fs, root: root}
}

// NewMem returns an FS backed by an empty in-memory filesystem.
func NewMem() *FS {
	return New(afero.NewMemMapFs(), "")
}

// NewDryRun returns an FS that reads from disk but keeps every write in
// memory. The disk is never modified.
func NewDryRun(root string) *FS {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	return New(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()), root)
}

// Afero returns the underlying filesystem.
func (f *FS) Afero() afero.Fs {
	return f.fs
}

func (f *FS) path(p string) string {
	if f.root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.root, p)
}

// MkdirAll creates the directory and any missing parents.
func (f *FS) MkdirAll(path string) error {
	return f.fs.MkdirAll(f.path(path), 0o750)
}

// Exists reports whether path exists.
func (f *FS) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, f.path(path))
}

// CopyFile copies src to dst, then carries over the source permissions and
// modification time.
func (f *FS) CopyFile(src, dst string) error {
	srcPath, dstPath := f.path(src), f.path(dst)
	if filepath.Clean(srcPath) == filepath.Clean(dstPath) {
		return fmt.Errorf("%s -> %s: %w", src, dst, domain.ErrSameFile)
	}

	in, err := f.fs.Open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, domain.ErrNotRegularFile)
	}

	if err := f.fs.MkdirAll(filepath.Dir(dstPath), 0o750); err != nil {
		return err
	}
	out, err := f.fs.OpenFile(dstPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	// Closing a written file bumps its mtime, so times are set afterwards.
	if err := out.Close(); err != nil {
		return err
	}
	return f.fs.Chtimes(dstPath, info.ModTime(), info.ModTime())
}
