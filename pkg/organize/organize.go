// Package organize sequences the pipeline that relocates a root
// container's dependency tree into category subfolders and rewrites
// every affected reference: collect, copy, remap the dependencies
// among themselves, remap the root's own graph, persist.
package organize

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/assort/pkg/classify"
	"github.com/arthur-debert/assort/pkg/collect"
	"github.com/arthur-debert/assort/pkg/config"
	"github.com/arthur-debert/assort/pkg/copier"
	"github.com/arthur-debert/assort/pkg/errors"
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/remap"
	"github.com/arthur-debert/assort/pkg/types"
)

// Pipeline runs the organize operation. Strictly sequential: copying
// and identity mapping complete before any rewriting starts, and the
// dependencies' own references are remapped before the root's.
type Pipeline struct {
	repo       types.Repository
	classifier *classify.Classifier
	cfg        *config.Config
	progress   types.ProgressFunc
	dryRun     bool
	logger     zerolog.Logger

	phase Phase

	// rootDup is the transient editable duplicate of the root
	// container. It is owned exclusively by the pipeline between
	// InstantiatingRoot and Persisting and released on every exit
	// path, failure included.
	rootDup *types.Resource
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithProgress installs an observational progress sink
func WithProgress(fn types.ProgressFunc) Option {
	return func(p *Pipeline) { p.progress = fn }
}

// WithDryRun plans the copy phase and mutates nothing
func WithDryRun(dryRun bool) Option {
	return func(p *Pipeline) { p.dryRun = dryRun }
}

// New creates a pipeline over the given repository
func New(repo types.Repository, classifier *classify.Classifier, cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		repo:       repo,
		classifier: classifier,
		cfg:        cfg,
		logger:     logging.GetLogger("organize"),
		phase:      PhaseIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Phase returns the pipeline's current state
func (p *Pipeline) Phase() Phase {
	return p.phase
}

func (p *Pipeline) enter(phase Phase, item string) {
	p.phase = phase
	p.logger.Debug().Str("phase", string(phase)).Msg("phase entered")
	if p.progress != nil && phase != PhaseDone && phase != PhaseFailed {
		p.progress(string(phase), item, 0)
	}
}

func (p *Pipeline) fail(err error) Result {
	p.phase = PhaseFailed
	p.logger.Error().Err(err).Msg("organize failed")
	return Result{Status: StatusFailure, Err: err}
}

// Organize relocates every transitively-referenced dependency of the
// root container at rootPath into category subfolders beside it and
// rewrites all references to point at the relocated copies. Item-level
// problems surface as warnings; only an unresolvable root aborts the
// run.
func (p *Pipeline) Organize(rootPath string) (result Result) {
	done := logging.LogOperationStart(p.logger, "organize")
	defer done()

	// The transient root duplicate and progress state are released no
	// matter which phase exits the run.
	defer p.release()

	p.enter(PhaseCollecting, rootPath)
	root, err := p.repo.Load(rootPath)
	if err != nil || root == nil {
		return p.fail(errors.Wrapf(err, errors.ErrRootNotFound,
			"root container %s is missing or unloadable", rootPath))
	}

	deps, err := collect.New(p.repo).Collect(rootPath)
	if err != nil {
		return p.fail(errors.Wrapf(err, errors.ErrRootLoad,
			"failed to collect dependencies of %s", rootPath))
	}

	cp := copier.New(p.repo, p.classifier)

	if p.dryRun {
		plan := cp.Plan(rootPath, deps)
		p.phase = PhaseDone
		return Result{Status: StatusSuccess, Dependencies: deps, Plan: plan, DryRun: true}
	}

	p.enter(PhaseCopying, "")
	corr := remap.Correspondence{}
	copied, warnings := cp.CopyAll(rootPath, deps, corr, p.progress)

	// The correspondence map is total from here on; rewriting may begin.
	p.enter(PhaseRemappingDependencies, "")
	warnings = append(warnings, p.remapDependencies(copied, corr)...)

	p.enter(PhaseInstantiatingRoot, rootPath)
	p.rootDup = root.Clone()

	p.enter(PhaseRemappingRoot, rootPath)
	for _, res := range p.rootDup.Flatten() {
		remap.Rewrite(res, corr)
		remap.RewriteMaterialTextures(res, corr, p.cfg.Material.TextureSlots)
	}

	p.enter(PhasePersisting, rootPath)
	if err := p.repo.SaveAll(); err != nil {
		return p.fail(err)
	}
	if err := p.repo.SaveTo(p.rootDup, rootPath); err != nil {
		return p.fail(err)
	}

	p.phase = PhaseDone
	p.logger.Info().Str("root", rootPath).Int("copied", len(copied)).
		Int("warnings", len(warnings)).Msg("organize complete")

	return Result{
		Status:       StatusSuccess,
		Warnings:     warnings,
		Dependencies: deps,
		Copied:       copied,
	}
}

// remapDependencies rewrites the copied dependencies' own references so
// they point at each other's new locations. This runs before the root
// is touched: the root's correctness depends on the dependencies
// already pointing at each other correctly.
func (p *Pipeline) remapDependencies(copied []string, corr remap.Correspondence) []types.Warning {
	var warnings []types.Warning

	for i, dst := range copied {
		if p.progress != nil {
			p.progress(string(PhaseRemappingDependencies), dst, float64(i)/float64(len(copied)))
		}

		resources, err := p.repo.LoadAll(dst)
		if err != nil {
			warnings = append(warnings, types.Warning{
				Kind:    types.WarnCorrespondence,
				Path:    dst,
				Message: err.Error(),
			})
			continue
		}
		for _, res := range resources {
			remap.Rewrite(res, corr)
			remap.RewriteMaterialTextures(res, corr, p.cfg.Material.TextureSlots)
		}
	}

	return warnings
}

// release drops the transient root duplicate and clears progress
// state. Runs unconditionally at the end of every organize call.
func (p *Pipeline) release() {
	if p.rootDup != nil {
		p.logger.Debug().Msg("releasing transient root duplicate")
		p.rootDup = nil
	}
	if p.progress != nil && (p.phase == PhaseDone || p.phase == PhaseFailed) {
		p.progress(string(p.phase), "", 1)
	}
}
