package repository

import (
	"fmt"
	"path"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/assort/pkg/config"
	"github.com/arthur-debert/assort/pkg/errors"
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/arthur-debert/assort/pkg/types"
)

// Executor performs the physical filesystem mutations for a repository.
// The default executor writes through types.FS directly; the CLI swaps
// in the synthfs-backed one.
type Executor interface {
	CreateDir(abs string) error
	CopyFile(srcAbs, dstAbs string) error
}

// directExecutor mutates the filesystem through types.FS
type directExecutor struct {
	fs types.FS
}

func (d *directExecutor) CreateDir(abs string) error {
	return d.fs.MkdirAll(abs, 0755)
}

func (d *directExecutor) CopyFile(srcAbs, dstAbs string) error {
	data, err := d.fs.ReadFile(srcAbs)
	if err != nil {
		return err
	}
	return d.fs.WriteFile(dstAbs, data, 0644)
}

// Repository is the path-addressable resource store, implemented over a
// types.FS. Paths are slash-separated and relative to the root.
type Repository struct {
	fs    types.FS
	paths paths.Paths
	cfg   *config.Config
	exec  Executor

	// bytes caches raw file reads; sets is the identity registry of
	// parsed primaries for the lifetime of the run, so every caller
	// sees the same resource pointers and SaveAll can find dirty ones.
	bytes *lru.Cache[string, []byte]
	sets  map[string]*types.Resource
}

// Option configures a Repository
type Option func(*Repository)

// WithExecutor replaces the physical mutation executor
func WithExecutor(e Executor) Option {
	return func(r *Repository) { r.exec = e }
}

// New creates a repository over the given filesystem and root
func New(fsys types.FS, p paths.Paths, cfg *config.Config, opts ...Option) *Repository {
	size := cfg.Repository.CacheSize
	if size <= 0 {
		size = 64
	}
	cache, _ := lru.New[string, []byte](size)

	r := &Repository{
		fs:    fsys,
		paths: p,
		cfg:   cfg,
		exec:  nil,
		bytes: cache,
		sets:  make(map[string]*types.Resource),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.exec == nil {
		r.exec = &directExecutor{fs: fsys}
	}
	return r
}

// Root returns the absolute repository root directory
func (r *Repository) Root() string {
	return r.paths.RepoRoot()
}

// Contains reports whether a repository-relative path is inside the
// editable repository: it must not escape the root and must not fall
// under a configured read-only prefix.
func (r *Repository) Contains(rel string) bool {
	if !r.paths.InRepository(rel) {
		return false
	}
	clean := path.Clean(rel)
	for _, prefix := range r.cfg.Repository.ExternalPrefixes {
		if strings.HasPrefix(clean, strings.TrimSuffix(prefix, "/")+"/") {
			return false
		}
	}
	return true
}

func (r *Repository) readFile(rel string) ([]byte, error) {
	if data, ok := r.bytes.Get(rel); ok {
		return data, nil
	}
	data, err := r.fs.ReadFile(r.paths.Abs(rel))
	if err != nil {
		return nil, err
	}
	r.bytes.Add(rel, data)
	return data, nil
}

// Load returns the primary resource stored at path
func (r *Repository) Load(rel string) (*types.Resource, error) {
	primary, err := r.loadPrimary(rel)
	if err != nil {
		return nil, err
	}
	return primary, nil
}

// LoadAll returns the primary resource plus all sub-resources at path
func (r *Repository) LoadAll(rel string) ([]*types.Resource, error) {
	primary, err := r.loadPrimary(rel)
	if err != nil {
		return nil, err
	}
	return primary.Flatten(), nil
}

func (r *Repository) loadPrimary(rel string) (*types.Resource, error) {
	if primary, ok := r.sets[rel]; ok {
		return primary, nil
	}

	data, err := r.readFile(rel)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrResourceLoad, "failed to read resource at %s", rel)
	}

	primary := &types.Resource{}
	if err := yaml.Unmarshal(data, primary); err != nil {
		return nil, errors.Wrapf(err, errors.ErrResourceParse, "failed to parse resource at %s", rel)
	}
	primary.Asset = rel
	for _, obj := range primary.Objects {
		obj.Asset = rel
	}

	r.sets[rel] = primary
	return primary, nil
}

// Copy duplicates the stored unit at src to dst, bringing any importer
// sidecar along. The copy is byte level; resource ordering inside the
// unit is not guaranteed to survive other tooling, which is why the
// correspondence mapper matches by identity rather than index.
func (r *Repository) Copy(src, dst string) error {
	logger := logging.GetLogger("repository")

	if err := r.exec.CopyFile(r.paths.Abs(src), r.paths.Abs(dst)); err != nil {
		return errors.Wrapf(err, errors.ErrItemCopy, "failed to copy %s to %s", src, dst)
	}
	r.bytes.Remove(dst)
	delete(r.sets, dst)

	sidecar := paths.ImportSidecar(src)
	if _, err := r.fs.Stat(r.paths.Abs(sidecar)); err == nil {
		if err := r.exec.CopyFile(r.paths.Abs(sidecar), r.paths.Abs(paths.ImportSidecar(dst))); err != nil {
			return errors.Wrapf(err, errors.ErrItemCopy, "failed to copy sidecar for %s", src)
		}
	}

	logger.Debug().Str("src", src).Str("dst", dst).Msg("copied resource")
	return nil
}

// GenerateUniquePath returns candidate, or a distinguishable variant
// with a numeric suffix when the candidate is taken
func (r *Repository) GenerateUniquePath(candidate string) string {
	if !r.exists(candidate) {
		return candidate
	}
	ext := path.Ext(candidate)
	stem := strings.TrimSuffix(candidate, ext)
	for i := 1; ; i++ {
		next := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if !r.exists(next) {
			return next
		}
	}
}

func (r *Repository) exists(rel string) bool {
	_, err := r.fs.Stat(r.paths.Abs(rel))
	return err == nil
}

// DirExists reports whether dir exists under the repository root
func (r *Repository) DirExists(dir string) bool {
	info, err := r.fs.Stat(r.paths.Abs(dir))
	return err == nil && info.IsDir()
}

// CreateDir creates dir; it succeeds when the directory already exists
func (r *Repository) CreateDir(dir string) error {
	if err := r.exec.CreateDir(r.paths.Abs(dir)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	return nil
}

// Save persists the stored unit containing res back to its path
func (r *Repository) Save(res *types.Resource) error {
	primary, ok := r.sets[res.Asset]
	if !ok {
		primary = res
	}

	data, err := yaml.Marshal(primary)
	if err != nil {
		return errors.Wrapf(err, errors.ErrResourceSave, "failed to serialize resource at %s", res.Asset)
	}
	if err := r.fs.WriteFile(r.paths.Abs(res.Asset), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrResourceSave, "failed to write resource at %s", res.Asset)
	}

	r.bytes.Remove(res.Asset)
	primary.ClearModified()
	return nil
}

// SaveAll persists every loaded resource that is marked modified
func (r *Repository) SaveAll() error {
	logger := logging.GetLogger("repository")
	saved := 0
	for rel, primary := range r.sets {
		if !primary.Modified() {
			continue
		}
		if err := r.Save(primary); err != nil {
			return err
		}
		logger.Debug().Str("path", rel).Msg("saved modified resource")
		saved++
	}
	logger.Debug().Int("count", saved).Msg("save-all complete")
	return nil
}

// SaveTo persists res at an explicit path, replacing prior contents.
// Used when persisting the edited duplicate of the root container back
// to the root's original path.
func (r *Repository) SaveTo(res *types.Resource, rel string) error {
	data, err := yaml.Marshal(res)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRootSave, "failed to serialize resource for %s", rel)
	}
	if err := r.fs.WriteFile(r.paths.Abs(rel), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRootSave, "failed to write resource at %s", rel)
	}
	r.bytes.Remove(rel)
	delete(r.sets, rel)
	return nil
}
