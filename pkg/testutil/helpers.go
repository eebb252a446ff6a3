package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assort/pkg/types"
)

// WriteAsset writes a resource file, creating parent directories
func WriteAsset(t *testing.T, fsys types.FS, path string, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// TextureYAML builds a minimal texture resource document
func TextureYAML(name string) string {
	return fmt.Sprintf(`kind: texture
name: %s
fields:
  width: 512
  height: 512
`, name)
}

// MaterialYAML builds a material referencing one texture in its albedo
// slot and a shader (an excluded kind).
func MaterialYAML(name, texAsset, texName string) string {
	return fmt.Sprintf(`kind: material
name: %s
fields:
  shader:
    asset: Shaders/standard.asset
    kind: shader
    name: Standard
  textures:
    albedo:
      asset: %s
      kind: texture
      name: %s
`, name, texAsset, texName)
}

// PrefabYAML builds a root container with one mesh-renderer component
// referencing a material.
func PrefabYAML(name, matAsset, matName string) string {
	return fmt.Sprintf(`kind: prefab
name: %s
objects:
  - kind: component
    name: MeshRenderer
    fields:
      material:
        asset: %s
        kind: material
        name: %s
fields:
  layer: 0
`, name, matAsset, matName)
}
