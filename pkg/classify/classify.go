// Package classify maps resource kinds to destination categories.
// The category table comes from configuration; kinds outside the table
// are only relocated when an importer sidecar marks them as geometry.
package classify

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/assort/pkg/config"
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/arthur-debert/assort/pkg/types"
)

// geometryImporterTypes are importer declarations that mark a stored
// unit as importer-backed geometry data
var geometryImporterTypes = map[string]bool{
	"model":    true,
	"geometry": true,
	"mesh":     true,
}

// Classifier assigns destination categories to resources
type Classifier struct {
	categories map[types.Kind]string
	fs         types.FS
	paths      paths.Paths
}

// New builds a classifier from the configured category table
func New(cfg *config.Config, fsys types.FS, p paths.Paths) *Classifier {
	categories := make(map[types.Kind]string, len(cfg.Categories))
	for kind, category := range cfg.Categories {
		categories[types.Kind(kind)] = category
	}
	return &Classifier{categories: categories, fs: fsys, paths: p}
}

// Classify returns the destination category for a resource, or false
// when the resource is not relocatable: code/behavior/shader kinds and
// kinds outside the category table that are not importer-backed
// geometry.
func (c *Classifier) Classify(res *types.Resource) (string, bool) {
	if res == nil || res.Kind.IsCode() {
		return "", false
	}

	if category, ok := c.categories[res.Kind]; ok {
		return category, true
	}

	if c.isImporterBackedGeometry(res) {
		if category, ok := c.categories[types.KindMesh]; ok {
			return category, true
		}
	}

	return "", false
}

// isImporterBackedGeometry checks the resource's importer sidecar. A
// model resource without a sidecar still counts as geometry; any other
// kind needs a sidecar declaring a geometry importer.
func (c *Classifier) isImporterBackedGeometry(res *types.Resource) bool {
	logger := logging.GetLogger("classify")

	sidecar := c.paths.Abs(paths.ImportSidecar(res.Asset))
	data, err := c.fs.ReadFile(sidecar)
	if err != nil {
		return res.Kind == types.KindModel
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		logger.Warn().Err(err).Str("sidecar", sidecar).Msg("unreadable importer sidecar")
		return res.Kind == types.KindModel
	}

	root := doc.Root()
	if root == nil || root.Tag != "importer" {
		return false
	}
	return geometryImporterTypes[root.SelectAttrValue("type", "")]
}
