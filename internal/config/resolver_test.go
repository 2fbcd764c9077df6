package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/gmrepo"
)

func TestResolveStringPrecedence(t *testing.T) {
	t.Run("flag beats env and config", func(t *testing.T) {
		t.Setenv("GMREPO_BASE_URL", "https://env.example.org/")

		v := resolveString("baseUrl", "https://flag.example.org/", "GMREPO_BASE_URL",
			"https://config.example.org/", "https://default.example.org/")

		assert.Equal(t, "https://flag.example.org/", v.Value)
		assert.Equal(t, SourceFlag, v.Source)
		assert.Equal(t, "https://env.example.org/", v.Shadowed[SourceEnv])
		assert.Equal(t, "https://config.example.org/", v.Shadowed[SourceConfig])
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("GMREPO_BASE_URL", "https://env.example.org/")

		v := resolveString("baseUrl", "", "GMREPO_BASE_URL",
			"https://config.example.org/", "https://default.example.org/")

		assert.Equal(t, "https://env.example.org/", v.Value)
		assert.Equal(t, SourceEnv, v.Source)
		assert.Equal(t, "https://config.example.org/", v.Shadowed[SourceConfig])
	})

	t.Run("config beats default", func(t *testing.T) {
		v := resolveString("baseUrl", "", "",
			"https://config.example.org/", "https://default.example.org/")

		assert.Equal(t, "https://config.example.org/", v.Value)
		assert.Equal(t, SourceConfig, v.Source)
	})

	t.Run("default when nothing set", func(t *testing.T) {
		v := resolveString("baseUrl", "", "", "", "https://default.example.org/")

		assert.Equal(t, "https://default.example.org/", v.Value)
		assert.Equal(t, SourceDefault, v.Source)
		assert.Empty(t, v.Shadowed)
	})
}

func TestResolveAll(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GMREPO_BASE_URL", "")
		t.Setenv("GMREPO_OUTPUT", "")
		t.Setenv("GMREPO_DOWNLOAD_DIR", "")
		t.Setenv("GMREPO_DOWNLOAD_BASE_URL", "")
		t.Setenv("GMREPO_CONFIG", "")

		resolved, err := ResolveAll(ResolveAllOptions{})
		require.NoError(t, err)

		assert.Equal(t, gmrepo.DefaultBaseURL, resolved.BaseURL.Value)
		assert.Equal(t, SourceDefault, resolved.BaseURL.Source)
		assert.Equal(t, "table", resolved.Output.Value)
		assert.Equal(t, ".", resolved.DownloadDir.Value)
		assert.Equal(t, gmrepo.DefaultTimeout, resolved.Timeout)
		assert.Equal(t, 0, resolved.RetryCount)
		assert.Equal(t, time.Second, resolved.RetryWait)
	})

	t.Run("config values apply", func(t *testing.T) {
		t.Setenv("GMREPO_BASE_URL", "")
		t.Setenv("GMREPO_OUTPUT", "")
		t.Setenv("GMREPO_DOWNLOAD_DIR", "")
		t.Setenv("GMREPO_DOWNLOAD_BASE_URL", "")

		resolved, err := ResolveAll(ResolveAllOptions{
			Config: &Config{
				BaseURL:        "https://mirror.example.org/api/",
				Output:         "csv",
				TimeoutSeconds: 120,
				Retry:          RetryConfig{Count: 3, WaitSeconds: 5},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "https://mirror.example.org/api/", resolved.BaseURL.Value)
		assert.Equal(t, SourceConfig, resolved.BaseURL.Source)
		assert.Equal(t, "csv", resolved.Output.Value)
		assert.Equal(t, 120*time.Second, resolved.Timeout)
		assert.Equal(t, 3, resolved.RetryCount)
		assert.Equal(t, 5*time.Second, resolved.RetryWait)
	})

	t.Run("flags beat config", func(t *testing.T) {
		resolved, err := ResolveAll(ResolveAllOptions{
			BaseURLFlag: "https://flag.example.org/api/",
			OutputFlag:  "json",
			Timeout:     10 * time.Second,
			Config:      &Config{BaseURL: "https://config.example.org/api/", Output: "csv", TimeoutSeconds: 120},
		})
		require.NoError(t, err)

		assert.Equal(t, "https://flag.example.org/api/", resolved.BaseURL.Value)
		assert.Equal(t, SourceFlag, resolved.BaseURL.Source)
		assert.Equal(t, "json", resolved.Output.Value)
		assert.Equal(t, 10*time.Second, resolved.Timeout)
	})

	t.Run("unknown output format from flag fails", func(t *testing.T) {
		_, err := ResolveAll(ResolveAllOptions{OutputFlag: "bogus"})

		require.Error(t, err)
		assert.ErrorIs(t, err, gerrors.ErrValidation)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("unknown output format from env fails", func(t *testing.T) {
		t.Setenv("GMREPO_OUTPUT", "xml")

		_, err := ResolveAll(ResolveAllOptions{})

		assert.ErrorIs(t, err, gerrors.ErrValidation)
	})
}
