package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minlua/minlua/minify"
)

func TestWatchOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b.min.lua", watchOutputPath("a/b.lua"))
	assert.Equal(t, "a/b.min.lua", watchOutputPath("a/b.min.lua"))
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".minlua.yaml")
	require.NoError(t, initConfigurationFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: minlua")
	assert.Contains(t, string(content), "- remove_empty_do")

	// The generated file must load back into a working pipeline.
	config, err := minify.LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, config.RuleInstances(), 1)
}
