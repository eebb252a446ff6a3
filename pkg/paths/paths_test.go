// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (env vars via t.Setenv)
// PURPOSE: Test repository root resolution and path conversions

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitRoot(t *testing.T) {
	root := t.TempDir()
	p, err := paths.New(root)
	require.NoError(t, err)

	assert.Equal(t, root, p.RepoRoot())
	assert.False(t, p.UsedFallback())
}

func TestNew_EnvRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.EnvRepoRoot, root)

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, root, p.RepoRoot())
	assert.False(t, p.UsedFallback())
}

func TestAbsRel_RoundTrip(t *testing.T) {
	root := t.TempDir()
	p, err := paths.New(root)
	require.NoError(t, err)

	abs := p.Abs("Textures/brick.asset")
	assert.Equal(t, filepath.Join(root, "Textures", "brick.asset"), abs)

	rel, err := p.Rel(abs)
	require.NoError(t, err)
	assert.Equal(t, "Textures/brick.asset", rel)
}

func TestInRepository(t *testing.T) {
	p, err := paths.New(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"simple", "Materials/brick.asset", true},
		{"root_level", "scene.asset", true},
		{"dot_segments_resolved", "a/../Materials/m.asset", true},
		{"escaping", "../outside/m.asset", false},
		{"absolute", "/etc/passwd", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.InRepository(tt.path))
		})
	}
}

func TestDestinationDir(t *testing.T) {
	assert.Equal(t, "Scenes/Textures", paths.DestinationDir("Scenes/city.asset", "Textures"))
	assert.Equal(t, "Textures", paths.DestinationDir("city.asset", "Textures"))
}

func TestImportSidecar(t *testing.T) {
	assert.Equal(t, "Models/tree.asset.import", paths.ImportSidecar("Models/tree.asset"))
}
