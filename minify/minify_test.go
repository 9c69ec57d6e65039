package minify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeLua(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWithoutConfiguration(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)
	require.Len(t, engine.Rules(), 1)
}

func TestNewWithConfiguration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".minlua.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - remove_empty_do\n  - group_local_assignments\n"), 0o644))

	engine, err := New(path)
	require.NoError(t, err)
	assert.Len(t, engine.Rules(), 2)
}

func TestNewWithBrokenConfiguration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".minlua.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - not_a_real_rule\n"), 0o644))

	_, err := New(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rule name")
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLua(t, dir, "sample.lua", "do end return 1")

	engine, err := New("")
	require.NoError(t, err)

	result, err := ProcessFile(engine, path)
	require.NoError(t, err)
	assert.Equal(t, "return 1", result.Output)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLua(t, dir, "sample.lua", "do end local var = false")

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), zap.NewNop(), engine, path, ProcessFile)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "local var=false", results[0].Output)
}

func TestProcessPathSkipsNonLuaFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLua(t, dir, "notes.txt", "not lua")

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), zap.NewNop(), engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessPathDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLua(t, dir, "a.lua", "do end return 1")
	writeLua(t, dir, filepath.Join("sub", "b.lua"), "local a local b")
	writeLua(t, dir, "skip.txt", "not lua")

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), zap.NewNop(), engine, dir, ProcessFile)
	require.NoError(t, err)
	require.Len(t, results, 2)

	outputs := map[string]string{}
	for _, result := range results {
		outputs[filepath.Base(result.Filename)] = result.Output
	}
	assert.Equal(t, "return 1", outputs["a.lua"])
	assert.Equal(t, "local a local b", outputs["b.lua"])
}

func TestProcessPathSurfacesParseErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLua(t, dir, "broken.lua", "local = 1")

	engine, err := New("")
	require.NoError(t, err)

	_, err = ProcessPath(context.Background(), zap.NewNop(), engine, dir, ProcessFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing source")
}

func TestProcessFilesCollectsAllPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeLua(t, dir, "a.lua", "do end return 1")
	second := writeLua(t, dir, "b.lua", "do end return 2")

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessFiles(context.Background(), zap.NewNop(), engine, []string{first, second}, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProcessFilesMissingPath(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	_, err = ProcessFiles(context.Background(), zap.NewNop(), engine, []string{filepath.Join(t.TempDir(), "missing.lua")}, ProcessFile)
	assert.Error(t, err)
}
