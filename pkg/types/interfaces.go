package types

import (
	"io/fs"
)

// FS is the filesystem interface required for assort operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// Repository is a path-addressable resource store. Paths are
// slash-separated and relative to the repository root. The pipeline
// only ever talks to the store through this interface.
type Repository interface {
	// Root returns the absolute repository root directory
	Root() string

	// Load returns the primary resource stored at path
	Load(path string) (*Resource, error)

	// LoadAll returns the primary resource plus all sub-resources at path
	LoadAll(path string) ([]*Resource, error)

	// Copy duplicates the stored unit at src to dst, sidecars included
	Copy(src, dst string) error

	// GenerateUniquePath returns candidate, or a distinguishable variant
	// of it if the candidate path is already in use
	GenerateUniquePath(candidate string) string

	// DirExists reports whether dir exists under the repository root
	DirExists(dir string) bool

	// CreateDir creates dir, succeeding when it already exists
	CreateDir(dir string) error

	// Contains reports whether path is inside the editable repository.
	// External and read-only locations are never relocated.
	Contains(path string) bool

	// Save persists a modified resource back to its path
	Save(res *Resource) error

	// SaveTo persists res at an explicit path, replacing prior contents
	SaveTo(res *Resource, path string) error

	// SaveAll persists every loaded resource that is marked modified
	SaveAll() error
}

// ProgressFunc receives (phase label, item label, fraction complete)
// tuples from the pipeline. Purely observational.
type ProgressFunc func(phase string, item string, fraction float64)
