package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteIgnoreFile(t *testing.T) {
	t.Parallel()

	t.Run("writes the rendered patterns", func(t *testing.T) {
		dir := t.TempDir()

		err := WriteIgnoreFile(dir, []string{"node_modules/", "*.log"})
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, IgnoreFileName))
		require.NoError(t, err)
		require.Equal(t, "node_modules/\n*.log\n", string(content))
	})

	t.Run("fully replaces an existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, IgnoreFileName)
		require.NoError(t, os.WriteFile(path, []byte("keep-me/\n"), 0600))

		err := WriteIgnoreFile(dir, []string{"*.tmp"})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "*.tmp\n", string(content))
		require.NotContains(t, string(content), "keep-me")
	})
}

func TestDefaultIgnorePatterns(t *testing.T) {
	t.Parallel()

	rendered := RenderIgnore(DefaultIgnorePatterns)

	// The template covers the categories a fresh project needs ignored
	for _, want := range []string{"node_modules/", ".env", "*.safetensors", ".DS_Store", "*.log"} {
		require.Contains(t, rendered, want)
	}
}
