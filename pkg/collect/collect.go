// Package collect computes the transitive dependency closure of a root
// container: every distinct repository path reachable from it through
// reference traversal.
package collect

import (
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/types"
)

// Collector walks the reference graph rooted at one container
type Collector struct {
	repo types.Repository
}

// New creates a collector over the given repository
func New(repo types.Repository) *Collector {
	return &Collector{repo: repo}
}

// Collect returns the deduplicated sequence of dependency paths
// reachable from rootPath, excluding the root path itself. Resources
// outside the editable repository are excluded and not traversed into.
// Paths holding code/behavior kinds are excluded from the result but
// still traversed, since the copier re-checks kinds anyway and a
// loadable unit may mix kinds across its sub-resources.
//
// Breadth-first order with sorted field traversal keeps the sequence
// deterministic; correctness does not depend on ordering, only
// progress reporting does.
func (c *Collector) Collect(rootPath string) ([]string, error) {
	logger := logging.GetLogger("collect")

	visited := map[string]bool{rootPath: true}
	queue := []string{rootPath}
	var deps []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		resources, err := c.repo.LoadAll(current)
		if err != nil {
			if current == rootPath {
				return nil, err
			}
			// Unloadable dependencies are skipped, not fatal
			logger.Debug().Err(err).Str("path", current).Msg("skipping unloadable dependency")
			continue
		}

		for _, res := range resources {
			res.VisitRefs(func(ref *types.Ref) {
				if ref.IsZero() || visited[ref.Asset] {
					return
				}
				visited[ref.Asset] = true
				if !c.repo.Contains(ref.Asset) {
					logger.Debug().Str("path", ref.Asset).Msg("reference outside repository, skipping")
					return
				}
				queue = append(queue, ref.Asset)
				if !isCodePath(c.repo, ref.Asset) {
					deps = append(deps, ref.Asset)
				}
			})
		}
	}

	logger.Debug().Str("root", rootPath).Int("count", len(deps)).Msg("dependency closure collected")
	return deps, nil
}

// isCodePath reports whether the primary resource at path is a
// code/behavior kind. Unloadable paths are not code; the copier will
// skip them on its own.
func isCodePath(repo types.Repository, path string) bool {
	res, err := repo.Load(path)
	if err != nil || res == nil {
		return false
	}
	return res.Kind.IsCode()
}
