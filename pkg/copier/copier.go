// Package copier relocates qualifying dependencies into category
// subfolders beside the root container and feeds the correspondence
// map as it goes.
package copier

import (
	"path"

	"github.com/arthur-debert/assort/pkg/classify"
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/arthur-debert/assort/pkg/remap"
	"github.com/arthur-debert/assort/pkg/types"
)

// Decision says what the copier will do with a dependency and why
type Decision string

const (
	DecisionCopy           Decision = "copy"
	DecisionSkipUnloadable Decision = "skip-unloadable"
	DecisionSkipCode       Decision = "skip-code"
	DecisionSkipExternal   Decision = "skip-external"
	DecisionSkipUnlisted   Decision = "skip-unlisted-kind"
	DecisionSkipOrganized  Decision = "skip-already-organized"
)

// Item is the copier's verdict for one dependency path
type Item struct {
	Path        string
	Kind        types.Kind
	Category    string
	Destination string
	Decision    Decision
}

// Copier plans and executes dependency relocation
type Copier struct {
	repo       types.Repository
	classifier *classify.Classifier
	mapper     *remap.Mapper
}

// New creates a copier over the given repository and classifier
func New(repo types.Repository, classifier *classify.Classifier) *Copier {
	return &Copier{
		repo:       repo,
		classifier: classifier,
		mapper:     remap.NewMapper(repo),
	}
}

// decide applies the skip rules of the copy phase to one dependency.
// The destination on a copy decision is the candidate path before
// collision resolution.
func (c *Copier) decide(rootPath, dep string) Item {
	item := Item{Path: dep}

	if !c.repo.Contains(dep) {
		item.Decision = DecisionSkipExternal
		return item
	}

	res, err := c.repo.Load(dep)
	if err != nil || res == nil {
		item.Decision = DecisionSkipUnloadable
		return item
	}
	item.Kind = res.Kind

	if res.Kind.IsCode() {
		item.Decision = DecisionSkipCode
		return item
	}

	category, ok := c.classifier.Classify(res)
	if !ok {
		item.Decision = DecisionSkipUnlisted
		return item
	}
	item.Category = category

	// Idempotence guard: a dependency already sitting in a folder named
	// after its category is organized; re-running is a no-op for it.
	if path.Base(path.Dir(dep)) == category {
		item.Decision = DecisionSkipOrganized
		return item
	}

	item.Destination = path.Join(paths.DestinationDir(rootPath, category), path.Base(dep))
	item.Decision = DecisionCopy
	return item
}

// Plan returns the copier's verdict for every dependency, mutating
// nothing. Used by dry runs and the deps listing.
func (c *Copier) Plan(rootPath string, deps []string) []Item {
	items := make([]Item, 0, len(deps))
	for _, dep := range deps {
		items = append(items, c.decide(rootPath, dep))
	}
	return items
}

// CopyAll relocates every dependency that qualifies, in order. Each
// successful copy immediately feeds the correspondence map, so the map
// is total when the last item finishes. A failed item produces a
// warning and the run continues; one bad dependency never aborts the
// phase.
func (c *Copier) CopyAll(rootPath string, deps []string, corr remap.Correspondence, progress types.ProgressFunc) ([]string, []types.Warning) {
	logger := logging.GetLogger("copier")

	var copied []string
	var warnings []types.Warning

	for i, dep := range deps {
		if progress != nil {
			progress("Copying", dep, float64(i)/float64(len(deps)))
		}

		item := c.decide(rootPath, dep)
		if item.Decision != DecisionCopy {
			logger.Debug().Str("path", dep).Str("decision", string(item.Decision)).Msg("dependency skipped")
			continue
		}

		destDir := paths.DestinationDir(rootPath, item.Category)
		if !c.repo.DirExists(destDir) {
			if err := c.repo.CreateDir(destDir); err != nil {
				warnings = append(warnings, types.Warning{
					Kind:        types.WarnCopyFailed,
					Path:        dep,
					Destination: item.Destination,
					Message:     err.Error(),
				})
				continue
			}
		}

		dst := c.repo.GenerateUniquePath(item.Destination)
		if err := c.repo.Copy(dep, dst); err != nil {
			logger.Warn().Err(err).Str("path", dep).Str("destination", dst).Msg("copy failed, continuing")
			warnings = append(warnings, types.Warning{
				Kind:        types.WarnCopyFailed,
				Path:        dep,
				Destination: dst,
				Message:     err.Error(),
			})
			continue
		}

		warning, err := c.mapper.MapIdentities(dep, dst, corr)
		if err != nil {
			warnings = append(warnings, types.Warning{
				Kind:        types.WarnCorrespondence,
				Path:        dep,
				Destination: dst,
				Message:     err.Error(),
			})
			continue
		}
		if warning != nil {
			warnings = append(warnings, *warning)
		}

		copied = append(copied, dst)
	}

	if progress != nil && len(deps) > 0 {
		progress("Copying", "", 1)
	}

	logger.Info().Int("copied", len(copied)).Int("warnings", len(warnings)).Msg("copy phase complete")
	return copied, warnings
}
