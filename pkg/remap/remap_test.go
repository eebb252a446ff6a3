// pkg/remap/remap_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test identity pairing, generic rewriting and the material fallback

package remap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assort/pkg/config"
	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/arthur-debert/assort/pkg/remap"
	"github.com/arthur-debert/assort/pkg/repository"
	"github.com/arthur-debert/assort/pkg/testutil"
	"github.com/arthur-debert/assort/pkg/types"
)

func newRepo(t *testing.T) (*repository.Repository, *testutil.MemoryFS) {
	t.Helper()

	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/repo", 0755))
	p, err := paths.New("/repo")
	require.NoError(t, err)

	return repository.New(fs, p, config.Default()), fs
}

func TestMapIdentities(t *testing.T) {
	repo, fs := newRepo(t)

	doc := `kind: model
name: Tree
objects:
  - kind: mesh
    name: Trunk
  - kind: mesh
    name: Leaves
`
	// The copy's sub-resources come back in a different order; pairing
	// must go by identity, not index.
	copied := `kind: model
name: Tree
objects:
  - kind: mesh
    name: Leaves
  - kind: mesh
    name: Trunk
`
	testutil.WriteAsset(t, fs, "/repo/tree.asset", doc)
	testutil.WriteAsset(t, fs, "/repo/Meshes/tree.asset", copied)

	corr := remap.Correspondence{}
	warning, err := remap.NewMapper(repo).MapIdentities("tree.asset", "Meshes/tree.asset", corr)
	require.NoError(t, err)
	assert.Nil(t, warning)

	require.Len(t, corr, 3)
	for oldKey, newKey := range corr {
		assert.Equal(t, oldKey.Kind, newKey.Kind)
		assert.Equal(t, oldKey.Name, newKey.Name)
		assert.Equal(t, "Meshes/tree.asset", newKey.Asset)
	}

	trunk := types.ResourceKey{Asset: "tree.asset", Kind: types.KindMesh, Name: "Trunk"}
	assert.Equal(t, types.ResourceKey{Asset: "Meshes/tree.asset", Kind: types.KindMesh, Name: "Trunk"}, corr[trunk])
}

func TestMapIdentities_CountMismatchWarns(t *testing.T) {
	repo, fs := newRepo(t)

	testutil.WriteAsset(t, fs, "/repo/tree.asset", `kind: model
name: Tree
objects:
  - kind: mesh
    name: Trunk
`)
	testutil.WriteAsset(t, fs, "/repo/Meshes/tree.asset", "kind: model\nname: Tree\n")

	corr := remap.Correspondence{}
	warning, err := remap.NewMapper(repo).MapIdentities("tree.asset", "Meshes/tree.asset", corr)
	require.NoError(t, err)

	require.NotNil(t, warning)
	assert.Equal(t, types.WarnCorrespondence, warning.Kind)

	// The pairs that were found are still mapped; the unmatched mesh is absent
	require.Len(t, corr, 1)
	_, ok := corr[types.ResourceKey{Asset: "tree.asset", Kind: types.KindMesh, Name: "Trunk"}]
	assert.False(t, ok)
}

func TestRewrite(t *testing.T) {
	oldTex := types.ResourceKey{Asset: "tex.asset", Kind: types.KindTexture, Name: "T"}
	newTex := types.ResourceKey{Asset: "Scenes/Textures/tex.asset", Kind: types.KindTexture, Name: "T"}
	corr := remap.Correspondence{oldTex: newTex}

	res := &types.Resource{
		Asset: "mat.asset",
		Kind:  types.KindMaterial,
		Name:  "M",
		Fields: map[string]*types.Value{
			"shader": types.RefValue(types.Ref{Asset: "sh.asset", Kind: types.KindShader, Name: "S"}),
			"nested": types.MapValue(map[string]*types.Value{
				"deep": types.ListValue(
					types.RefValue(types.RefTo(oldTex)),
					types.ScalarValue("not a ref"),
				),
			}),
			"null": types.RefValue(types.Ref{}),
		},
	}

	n := remap.Rewrite(res, corr)
	assert.Equal(t, 1, n)
	assert.True(t, res.Modified())

	// Mapped ref rewritten, unmapped and null refs untouched
	assert.Equal(t, types.RefTo(newTex), *res.Fields["nested"].Map["deep"].List[0].Ref)
	assert.Equal(t, "sh.asset", res.Fields["shader"].Ref.Asset)
	assert.True(t, res.Fields["null"].Ref.IsZero())
}

func TestRewrite_NoMatchesLeavesUnmodified(t *testing.T) {
	res := &types.Resource{
		Asset:  "a.asset",
		Kind:   types.KindTexture,
		Name:   "A",
		Fields: map[string]*types.Value{"width": types.ScalarValue(512)},
	}
	assert.Zero(t, remap.Rewrite(res, remap.Correspondence{}))
	assert.False(t, res.Modified())
}

func TestRewriteMaterialTextures(t *testing.T) {
	oldTex := types.ResourceKey{Asset: "tex.asset", Kind: types.KindTexture, Name: "T"}
	newTex := types.ResourceKey{Asset: "Textures/tex.asset", Kind: types.KindTexture, Name: "T"}
	corr := remap.Correspondence{oldTex: newTex}
	slots := config.Default().Material.TextureSlots

	mat := &types.Resource{
		Asset: "mat.asset",
		Kind:  types.KindMaterial,
		Name:  "M",
		Fields: map[string]*types.Value{
			"textures": types.MapValue(map[string]*types.Value{
				"albedo": types.RefValue(types.RefTo(oldTex)),
				"normal": types.RefValue(types.Ref{Asset: "other.asset", Kind: types.KindTexture, Name: "N"}),
			}),
		},
	}

	n := remap.RewriteMaterialTextures(mat, corr, slots)
	assert.Equal(t, 1, n)
	assert.Equal(t, types.RefTo(newTex), *mat.Fields["textures"].Map["albedo"].Ref)
	// Slot without a correspondence entry is preserved
	assert.Equal(t, "other.asset", mat.Fields["textures"].Map["normal"].Ref.Asset)

	// Double-applying after the generic walk must be a harmless no-op
	remap.Rewrite(mat, corr)
	modifiedBefore := mat.Modified()
	n = remap.RewriteMaterialTextures(mat, corr, slots)
	assert.Equal(t, 1, n)
	assert.Equal(t, types.RefTo(newTex), *mat.Fields["textures"].Map["albedo"].Ref)
	assert.Equal(t, modifiedBefore, mat.Modified())
}

func TestRewriteMaterialTextures_NonMaterialIgnored(t *testing.T) {
	res := &types.Resource{Asset: "x.asset", Kind: types.KindTexture, Name: "X"}
	assert.Zero(t, remap.RewriteMaterialTextures(res, remap.Correspondence{}, []string{"albedo"}))
}
