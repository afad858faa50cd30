package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no file exists", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		require.Equal(t, "origin", cfg.Remote.Name)
		require.Equal(t, "", cfg.Remote.URL)
		require.Equal(t, "main", cfg.Branch)
		require.True(t, cfg.Ignore.Write)
		require.True(t, cfg.Browser.Open)
		require.Contains(t, cfg.Project.Markers, "README.md")
		require.NotEmpty(t, cfg.Ignore.Patterns)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `branch = "trunk"

[remote]
name = "upstream"
url = "git@github.com:octo/widgets.git"

[browser]
open = false
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(content), 0600))

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.Equal(t, "trunk", cfg.Branch)
		require.Equal(t, "upstream", cfg.Remote.Name)
		require.Equal(t, "git@github.com:octo/widgets.git", cfg.Remote.URL)
		require.False(t, cfg.Browser.Open)

		// Unset sections keep their defaults
		require.True(t, cfg.Ignore.Write)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := t.TempDir()
		content := `branch = "trunk"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(content), 0600))
		t.Setenv("SHIPIT_BRANCH", "release")

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.Equal(t, "release", cfg.Branch)
	})

	t.Run("environment sets nested keys", func(t *testing.T) {
		t.Setenv("SHIPIT_REMOTE_URL", "https://github.com/octo/widgets.git")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, "https://github.com/octo/widgets.git", cfg.Remote.URL)
	})

	t.Run("rejects an empty branch", func(t *testing.T) {
		dir := t.TempDir()
		content := `branch = ""
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(content), 0600))

		_, err := Load(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "branch")
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte("not = [valid"), 0600))

		_, err := Load(dir)
		require.Error(t, err)
	})
}

func TestWriteStarter(t *testing.T) {
	t.Parallel()

	t.Run("writes a loadable file", func(t *testing.T) {
		dir := t.TempDir()

		path, err := WriteStarter(dir)
		require.NoError(t, err)
		require.FileExists(t, path)

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.Equal(t, "main", cfg.Branch)
		require.Equal(t, "origin", cfg.Remote.Name)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := t.TempDir()

		_, err := WriteStarter(dir)
		require.NoError(t, err)

		_, err = WriteStarter(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already exists")
	})
}
