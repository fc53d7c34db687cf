package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sagesearch/copy-assets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		root := t.TempDir()
		configContent := "manifest = \"assets.toml\""
		err := os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte(configContent), 0o644)
		require.NoError(t, err)

		info := NewManager(root).GetConfigInfo()

		assert.Equal(t, filepath.Join(root, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		root := t.TempDir()

		info := NewManager(root).GetConfigInfo()

		assert.Equal(t, filepath.Join(root, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitConfig(t *testing.T) {
	t.Run("writes config readable by Loader", func(t *testing.T) {
		root := t.TempDir()
		cfg := domain.NewDefaultConfig()
		cfg.Manifest = "assets.toml"
		cfg.Log.Level = "debug"

		require.NoError(t, NewManager(root).InitConfig(cfg, false))

		content, err := os.ReadFile(filepath.Join(root, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "# copy-assets configuration")

		loaded, err := NewLoader(root).Load()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "assets.toml"), loaded.Manifest)
		assert.Equal(t, "debug", loaded.Log.Level)
		assert.True(t, loaded.ColorEnabled())
	})

	t.Run("returns error if file exists", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, domain.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

		err := NewManager(root).InitConfig(domain.NewDefaultConfig(), false)

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		content, _ := os.ReadFile(path)
		assert.Equal(t, "existing", string(content))
	})

	t.Run("overwrites when requested", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, domain.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

		require.NoError(t, NewManager(root).InitConfig(domain.NewDefaultConfig(), true))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "existing")
	})
}
