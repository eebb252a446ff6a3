package remap

import (
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/types"
)

// texturesField is the compound field carrying a material's texture
// binding slots, keyed by slot name.
const texturesField = "textures"

// RewriteMaterialTextures is the kind-specific fallback pass for
// material resources. The generic walk is known to miss vendor-specific
// binding slots that are not exposed through the generic property
// surface, so after it runs, the named texture slots are checked
// directly and rebound through corr. Rebinding a slot the generic walk
// already updated resolves to the same value, so the pass is idempotent
// and safe to double-apply.
func RewriteMaterialTextures(res *types.Resource, corr Correspondence, slots []string) int {
	if res.Kind != types.KindMaterial {
		return 0
	}

	logger := logging.GetLogger("remap")

	textures := res.Fields[texturesField]
	if textures == nil || textures.Map == nil {
		return 0
	}

	rebound := 0
	for _, slot := range slots {
		value, ok := textures.Map[slot]
		if !ok || value.Ref == nil || value.Ref.IsZero() {
			continue
		}
		newKey, ok := corr[value.Ref.Key()]
		if !ok {
			continue
		}
		updated := types.RefTo(newKey)
		if *value.Ref != updated {
			*value.Ref = updated
			res.MarkModified()
		}
		rebound++
	}

	if rebound > 0 {
		logger.Debug().Str("resource", res.Key().String()).Int("slots", rebound).
			Msg("material texture slots checked")
	}
	return rebound
}
