package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enci/wren-analyzer/internal/diag"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestListWrenFilesFiltersExtensionNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.wren", "var a = 1")
	writeFile(t, dir, "b.wren", "var b = 1")
	writeFile(t, dir, "notes.txt", "ignore me")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "sub"), "c.wren", "var c = 1")

	files, err := ListWrenFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.wren"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.wren"), files[1])
}

func TestListWrenFilesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	files, err := ListWrenFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestAnalyzeDirReturnsSortedResultsWithText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.wren", `System.print("x")`)
	writeFile(t, dir, "bad.wren", `var x: Num = "hi"`)

	results, err := AnalyzeDir(context.Background(), dir, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(dir, "bad.wren"), results[0].Path)
	assert.Equal(t, `var x: Num = "hi"`, string(results[0].Text))
	require.Len(t, results[0].Result.Diagnostics, 1)
	assert.Equal(t, diag.CodeTypeMismatch, results[0].Result.Diagnostics[0].Code)

	assert.Equal(t, filepath.Join(dir, "clean.wren"), results[1].Path)
	assert.Empty(t, results[1].Result.Diagnostics)
}

func TestAnalyzeDirEmptyDirReturnsNil(t *testing.T) {
	dir := t.TempDir()
	results, err := AnalyzeDir(context.Background(), dir, 0)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestAnalyzeDirDefaultsJobsWhenNonPositive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.wren", "var a = 1")

	results, err := AnalyzeDir(context.Background(), dir, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
}
