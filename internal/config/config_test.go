package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDecodesDiagnosticsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	contents := "[diagnostics]\ndisabled = [\"unknown-method\"]\nwarnings-as-errors = true\nmax = 10\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsDisabled("unknown-method"))
	assert.False(t, cfg.IsDisabled("type-mismatch"))
	assert.True(t, cfg.Diagnostics.WarningsAsErrors)
	assert.Equal(t, 10, cfg.Diagnostics.Max)
}

func TestFindWalksUpToAncestor(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, fileName), []byte("[diagnostics]\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, ok, err := Find(nested)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, fileName), found)
}

func TestLoadForDirWithNoConfigReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadForDir(dir)
	require.NoError(t, err)
	assert.False(t, cfg.IsDisabled("anything"))
	assert.Equal(t, 0, cfg.Diagnostics.Max)
}
