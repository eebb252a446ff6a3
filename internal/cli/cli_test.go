// internal/cli/cli_test.go
// TEST TYPE: CLI Integration Test
// DEPENDENCIES: temp directories
// PURPOSE: Test command wiring and end-to-end runs against a real
// temporary repository.

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assort/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// seedRepo creates a root prefab referencing one texture.
func seedRepo(t *testing.T) string {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "root.asset"), `kind: prefab
name: Root
fields:
    ground: {asset: art/ground.asset, kind: texture, name: Ground}
`)
	writeFile(t, filepath.Join(root, "art", "ground.asset"), "kind: texture\nname: Ground\n")
	return root
}

func TestRootCmd_HasExpectedCommands(t *testing.T) {
	rootCmd := cli.NewRootCmd()

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"organize", "deps", "gen-config", "topics", "version", "completion", "man"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_NoArgsShowsHelpAndFails(t *testing.T) {
	_, err := run(t)
	require.Error(t, err)
}

func TestDepsCmd_ListsClosure(t *testing.T) {
	root := seedRepo(t)

	out, err := run(t, "deps", "root.asset", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "art/ground.asset")
}

func TestOrganizeCmd_DryRun(t *testing.T) {
	root := seedRepo(t)

	out, err := run(t, "organize", "root.asset", "--root", root, "--dry-run", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "(dry run)")
	assert.Contains(t, out, "art/ground.asset")

	// Nothing moved
	_, statErr := os.Stat(filepath.Join(root, "Textures"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestOrganizeCmd_RelocatesTexture(t *testing.T) {
	root := seedRepo(t)

	out, err := run(t, "organize", "root.asset", "--root", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Textures/ground.asset")

	// The texture was copied and the root rewritten
	_, statErr := os.Stat(filepath.Join(root, "Textures", "ground.asset"))
	require.NoError(t, statErr)

	data, readErr := os.ReadFile(filepath.Join(root, "root.asset"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Textures/ground.asset")

	// The original is untouched
	orig, readErr := os.ReadFile(filepath.Join(root, "art", "ground.asset"))
	require.NoError(t, readErr)
	assert.Equal(t, "kind: texture\nname: Ground\n", string(orig))
}

func TestGenConfigCmd_PrintsEffectiveConfig(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, "gen-config", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "external_prefixes")
	assert.Contains(t, out, "texture_slots")
}

func TestGenConfigCmd_WriteRefusesOverwrite(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".assort.toml"), "[repository]\ncache_size = 8\n")

	_, err := run(t, "gen-config", "--root", root, "--write")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestTopicsCmd_ListsAndRenders(t *testing.T) {
	out, err := run(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "organizing")
	assert.Contains(t, out, "configuration")

	out, err = run(t, "topics", "organizing")
	require.NoError(t, err)
	assert.Contains(t, out, "organiz")

	_, err = run(t, "topics", "nope")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "assort version")
}
