// Package localfs provides the on-disk implementation of domain.FileSystem.
package localfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/sagesearch/copy-assets/internal/domain"
)

// Ensure FS implements domain.FileSystem.
var _ domain.FileSystem = (*FS)(nil)

// FS reads and writes the real filesystem.
// Relative paths are resolved against root.
type FS struct {
	root string
}

// New creates an FS rooted at root. An empty root means the process
// working directory.
func New(root string) *FS {
	return &FS{root: root}
}

// Root returns the directory relative paths are resolved against.
func (f *FS) Root() string {
	return f.root
}

func (f *FS) path(p string) string {
	if f.root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.root, p)
}

// MkdirAll creates the directory and any missing parents.
func (f *FS) MkdirAll(path string) error {
	return os.MkdirAll(f.path(path), 0o750)
}

// Exists reports whether path exists.
func (f *FS) Exists(path string) (bool, error) {
	_, err := os.Stat(f.path(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// CopyFile copies src to dst, preserving permissions and modification time.
// An existing dst is truncated and overwritten unless it is src itself, which
// fails with domain.ErrSameFile.
func (f *FS) CopyFile(src, dst string) error {
	srcPath, dstPath := f.path(src), f.path(dst)

	info, err := os.Stat(srcPath)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, domain.ErrNotRegularFile)
	}
	// Opening dst for writing would truncate src. SameFile also catches
	// links and paths that only differ lexically.
	if dstInfo, err := os.Stat(dstPath); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("%s -> %s: %w", src, dst, domain.ErrSameFile)
	}

	return copy.Copy(srcPath, dstPath, copy.Options{
		PreserveTimes: true,
		Sync:          true,
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Deep
		},
	})
}
