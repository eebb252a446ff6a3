// Package remap builds the old-to-new identity correspondence produced
// by copying and rewrites references through it.
package remap

import (
	"fmt"

	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/types"
)

// Correspondence maps old resource identities to the identities of
// their physically-copied counterparts. A key's presence guarantees a
// copied counterpart exists; absence means "do not rewrite", which is
// the safe default for excluded and external resources.
type Correspondence map[types.ResourceKey]types.ResourceKey

// Mapper pairs resources at an old path with those at its copy
type Mapper struct {
	repo types.Repository
}

// NewMapper creates a mapper over the given repository
func NewMapper(repo types.Repository) *Mapper {
	return &Mapper{repo: repo}
}

// MapIdentities loads every resource at oldPath and newPath and pairs
// each old resource with the new resource of matching (kind, name),
// inserting the pair into corr. Matching is a positional search by
// equality, not by index: the copy operation does not guarantee that
// sub-resource ordering survives. A count mismatch produces a warning
// and a partial map; unmatched old resources are simply absent and
// their references stay untouched.
func (m *Mapper) MapIdentities(oldPath, newPath string, corr Correspondence) (*types.Warning, error) {
	logger := logging.GetLogger("remap")

	oldResources, err := m.repo.LoadAll(oldPath)
	if err != nil {
		return nil, err
	}
	newResources, err := m.repo.LoadAll(newPath)
	if err != nil {
		return nil, err
	}

	var warning *types.Warning
	if len(oldResources) != len(newResources) {
		warning = &types.Warning{
			Kind:        types.WarnCorrespondence,
			Path:        oldPath,
			Destination: newPath,
			Message: fmt.Sprintf("resource counts differ (%d old, %d new); remapping the pairs found",
				len(oldResources), len(newResources)),
		}
		logger.Warn().Str("old", oldPath).Str("new", newPath).
			Int("oldCount", len(oldResources)).Int("newCount", len(newResources)).
			Msg("correspondence mismatch")
	}

	for _, oldRes := range oldResources {
		newRes := findByIdentity(newResources, oldRes.Kind, oldRes.Name)
		if newRes == nil {
			continue
		}
		corr[oldRes.Key()] = newRes.Key()
	}

	return warning, nil
}

func findByIdentity(resources []*types.Resource, kind types.Kind, name string) *types.Resource {
	for _, res := range resources {
		if res.Kind == kind && res.Name == name {
			return res
		}
	}
	return nil
}
