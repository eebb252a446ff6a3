// Package paths provides centralized path handling for assort.
// Repository paths are slash-separated and relative to the repository
// root; this package resolves the root and converts between the two
// forms.
package paths

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/assort/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot is the primary environment variable for the
	// repository location
	EnvRepoRoot = "ASSORT_REPO_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AssortDirName is the directory name for assort-specific files
	AssortDirName = "assort"

	// LogFileName is the name of the log file
	LogFileName = "assort.log"

	// AssetExt is the extension of stored resource units
	AssetExt = ".asset"

	// ImportSidecarExt is appended to a resource path to form its
	// importer sidecar path
	ImportSidecarExt = ".import"
)

// Paths provides centralized path management for assort
type Paths interface {
	RepoRoot() string
	UsedFallback() bool
	Abs(rel string) string
	Rel(abs string) (string, error)
	InRepository(p string) bool
}

type paths struct {
	repoRoot string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance rooted at repoRoot. If repoRoot is
// empty it is determined from the environment, the enclosing git
// repository, or the current directory, in that order.
func New(repoRoot string) (Paths, error) {
	p := &paths{}

	if repoRoot == "" {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		p.repoRoot = expandHome(repoRoot)
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository root")
	}
	p.repoRoot = absRoot

	return p, nil
}

// findRepoRoot determines the repository root using the following priority:
// 1. ASSORT_REPO_ROOT environment variable
// 2. Git repository root ('git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(p string) string {
	if p == "" {
		return p
	}

	if p[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return p
			}
		}

		if len(p) == 1 {
			return homeDir
		}
		if p[1] == '/' || p[1] == filepath.Separator {
			return filepath.Join(homeDir, p[2:])
		}
		return p
	}

	return p
}

// RepoRoot returns the absolute repository root directory
func (p *paths) RepoRoot() string {
	return p.repoRoot
}

// UsedFallback reports whether the root fell back to the cwd
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// Abs converts a repository-relative path to an absolute one
func (p *paths) Abs(rel string) string {
	return filepath.Join(p.repoRoot, filepath.FromSlash(rel))
}

// Rel converts an absolute path to repository-relative slash form
func (p *paths) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(p.repoRoot, abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "path %s is not relative to %s", abs, p.repoRoot)
	}
	return filepath.ToSlash(rel), nil
}

// InRepository reports whether a repository-relative path stays inside
// the repository root. Absolute paths and paths escaping via ".." are
// outside.
func (p *paths) InRepository(rel string) bool {
	if rel == "" || path.IsAbs(rel) || filepath.IsAbs(filepath.FromSlash(rel)) {
		return false
	}
	clean := path.Clean(rel)
	return clean != ".." && !strings.HasPrefix(clean, "../")
}

// LogFilePath returns the log file path under the XDG state home
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AssortDirName, LogFileName)
}

// DestinationDir computes the category subfolder for dependencies of
// the given root container: <rootDir>/<category>.
func DestinationDir(rootAsset, category string) string {
	dir := path.Dir(rootAsset)
	if dir == "." {
		return category
	}
	return path.Join(dir, category)
}

// ImportSidecar returns the importer sidecar path for a resource path
func ImportSidecar(asset string) string {
	return asset + ImportSidecarExt
}
