// Package git locates the project a run belongs to.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/sagesearch/copy-assets/internal/domain"
)

// Client provides read-only access to the enclosing git repository.
type Client struct {
	repo     *gogit.Repository
	repoRoot string // Worktree root (the directory holding .git)
}

// NewClient detects the repository containing dir, walking up parent
// directories. It returns domain.ErrNotGitRepository when none is found.
func NewClient(dir string) (*Client, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, domain.ErrNotGitRepository
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no files to copy into.
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	return &Client{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
	}, nil
}

// RepoRoot returns the worktree root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// IsIgnored reports whether path, relative to the repo root, is excluded by
// the worktree's .gitignore files, .git/info/exclude, or the core.excludesfile
// named in ~/.gitconfig or /etc/gitconfig. isDir selects directory-only
// patterns. Unreadable global or system settings are skipped.
func (c *Client) IsIgnored(path string, isDir bool) (bool, error) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("open worktree: %w", err)
	}
	repoPatterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return false, fmt.Errorf("read gitignore: %w", err)
	}

	// Later patterns take precedence, so the repository's own go last.
	rootFS := osfs.New("/")
	var patterns []gitignore.Pattern
	if ps, err := gitignore.LoadSystemPatterns(rootFS); err == nil {
		patterns = append(patterns, ps...)
	}
	if ps, err := gitignore.LoadGlobalPatterns(rootFS); err == nil {
		patterns = append(patterns, ps...)
	}
	patterns = append(patterns, repoPatterns...)

	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	return gitignore.NewMatcher(patterns).Match(parts, isDir), nil
}
