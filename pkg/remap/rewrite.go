package remap

import (
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/types"
)

// Rewrite substitutes every outgoing reference on res whose target is a
// key in corr, at any depth of the resource's own field surface. It
// does not follow into referenced objects; callers drive the rewrite
// once per object. References absent from corr, including null ones,
// are left byte-for-byte untouched. Returns the number of references
// rewritten; when non-zero the resource is marked modified so the
// persistence layer will save it.
func Rewrite(res *types.Resource, corr Correspondence) int {
	logger := logging.GetLogger("remap")

	rewritten := 0
	res.VisitRefs(func(ref *types.Ref) {
		if ref.IsZero() {
			return
		}
		newKey, ok := corr[ref.Key()]
		if !ok {
			return
		}
		*ref = types.RefTo(newKey)
		rewritten++
	})

	if rewritten > 0 {
		res.MarkModified()
		logger.Debug().Str("resource", res.Key().String()).Int("rewritten", rewritten).
			Msg("references rewritten")
	}
	return rewritten
}
