// pkg/collect/collect_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test transitive dependency discovery, dedup and exclusions

package collect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assort/pkg/collect"
	"github.com/arthur-debert/assort/pkg/config"
	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/arthur-debert/assort/pkg/repository"
	"github.com/arthur-debert/assort/pkg/testutil"
)

func newRepo(t *testing.T) (*repository.Repository, *testutil.MemoryFS) {
	t.Helper()

	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/repo", 0755))
	p, err := paths.New("/repo")
	require.NoError(t, err)

	return repository.New(fs, p, config.Default()), fs
}

func TestCollect_TransitiveAndDeduplicated(t *testing.T) {
	repo, fs := newRepo(t)

	// root -> material -> texture; a second component shares the material
	testutil.WriteAsset(t, fs, "/repo/city.asset", `kind: prefab
name: City
objects:
  - kind: component
    name: WallA
    fields:
      material: {asset: Materials/brick.asset, kind: material, name: Brick}
  - kind: component
    name: WallB
    fields:
      material: {asset: Materials/brick.asset, kind: material, name: Brick}
`)
	testutil.WriteAsset(t, fs, "/repo/Materials/brick.asset",
		testutil.MaterialYAML("Brick", "Textures/brick.asset", "BrickTex"))
	testutil.WriteAsset(t, fs, "/repo/Textures/brick.asset", testutil.TextureYAML("BrickTex"))
	testutil.WriteAsset(t, fs, "/repo/Shaders/standard.asset", "kind: shader\nname: Standard\n")

	deps, err := collect.New(repo).Collect("city.asset")
	require.NoError(t, err)

	// Deep, deduplicated, root excluded. The shader reference inside
	// the material is a code kind and stays out of the result.
	assert.Equal(t, []string{"Materials/brick.asset", "Textures/brick.asset"}, deps)
}

func TestCollect_ExcludesExternalPaths(t *testing.T) {
	repo, fs := newRepo(t)

	testutil.WriteAsset(t, fs, "/repo/city.asset", `kind: prefab
name: City
fields:
  vendored: {asset: vendor/pack/tex.asset, kind: texture, name: V}
  escaping: {asset: ../elsewhere/tex.asset, kind: texture, name: E}
  local: {asset: tex.asset, kind: texture, name: L}
`)
	testutil.WriteAsset(t, fs, "/repo/tex.asset", testutil.TextureYAML("L"))

	deps, err := collect.New(repo).Collect("city.asset")
	require.NoError(t, err)
	assert.Equal(t, []string{"tex.asset"}, deps)
}

func TestCollect_UnloadableDependencySkipped(t *testing.T) {
	repo, fs := newRepo(t)

	testutil.WriteAsset(t, fs, "/repo/city.asset", `kind: prefab
name: City
fields:
  missing: {asset: gone.asset, kind: texture, name: G}
  present: {asset: tex.asset, kind: texture, name: P}
`)
	testutil.WriteAsset(t, fs, "/repo/tex.asset", testutil.TextureYAML("P"))

	deps, err := collect.New(repo).Collect("city.asset")
	require.NoError(t, err)
	// The missing path is still a member of the closure; copying will
	// skip it when it proves unloadable.
	assert.Equal(t, []string{"gone.asset", "tex.asset"}, deps)
}

func TestCollect_RootMissingIsFatal(t *testing.T) {
	repo, _ := newRepo(t)
	_, err := collect.New(repo).Collect("nope.asset")
	require.Error(t, err)
}

func TestCollect_CyclesTerminate(t *testing.T) {
	repo, fs := newRepo(t)

	testutil.WriteAsset(t, fs, "/repo/a.asset", `kind: material
name: A
fields:
  other: {asset: b.asset, kind: material, name: B}
`)
	testutil.WriteAsset(t, fs, "/repo/b.asset", `kind: material
name: B
fields:
  other: {asset: a.asset, kind: material, name: A}
`)
	testutil.WriteAsset(t, fs, "/repo/root.asset", `kind: prefab
name: Root
fields:
  mat: {asset: a.asset, kind: material, name: A}
`)

	deps, err := collect.New(repo).Collect("root.asset")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.asset", "b.asset"}, deps)
}
