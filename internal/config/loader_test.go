package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
baseUrl: https://mirror.example.org/api/
downloadDir: /data/gmrepo
output: csv
timeoutSeconds: 120
retry:
  count: 3
  waitSeconds: 2
log:
  timestamps: true
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.org/api/", cfg.BaseURL)
		assert.Equal(t, "/data/gmrepo", cfg.DownloadDir)
		assert.Equal(t, "csv", cfg.Output)
		assert.Equal(t, 120, cfg.TimeoutSeconds)
		assert.Equal(t, 3, cfg.Retry.Count)
		assert.Equal(t, 2, cfg.Retry.WaitSeconds)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.BaseURL)
		assert.Empty(t, cfg.Output)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("GMREPO_BASE_URL", "https://env.example.org/api/")
		t.Setenv("GMREPO_OUTPUT", "json")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.org/api/", cfg.BaseURL)
		assert.Equal(t, "json", cfg.Output)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("GMREPO_OUTPUT", "yaml")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("output: csv\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Output)
	})
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	exists, err := ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(configFile, []byte("output: table\n"), 0o644))

	exists, err = ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.True(t, exists)
}
