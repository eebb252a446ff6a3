// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dirs only)
// PURPOSE: Test config layering: embedded defaults and repo overrides

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/assort/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "Materials", cfg.Categories["material"])
	assert.Equal(t, "Textures", cfg.Categories["texture"])
	assert.Equal(t, "PhysicsMaterials", cfg.Categories["physicsmaterial"])
	assert.NotContains(t, cfg.Categories, "script")
	assert.NotContains(t, cfg.Categories, "shader")

	assert.Contains(t, cfg.Repository.ExternalPrefixes, "vendor/")
	assert.Greater(t, cfg.Repository.CacheSize, 0)
	assert.Contains(t, cfg.Material.TextureSlots, "albedo")
}

func TestLoad_RepoOverride(t *testing.T) {
	root := t.TempDir()
	override := `
[categories]
texture = "Images"

[repository]
external_prefixes = ["thirdparty/"]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ".assort.toml"), []byte(override), 0644))

	cfg, err := config.Load(root)
	require.NoError(t, err)

	// Overridden keys win, untouched keys keep their defaults
	assert.Equal(t, "Images", cfg.Categories["texture"])
	assert.Equal(t, "Materials", cfg.Categories["material"])
	assert.Equal(t, []string{"thirdparty/"}, cfg.Repository.ExternalPrefixes)
}

func TestLoad_MissingRepoConfigIsFine(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Meshes", cfg.Categories["mesh"])
}

func TestLoad_BadTOML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "assort.toml"), []byte("not [valid"), 0644))

	_, err := config.Load(root)
	require.Error(t, err)
}
