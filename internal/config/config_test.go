package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gmrepo/cli/internal/gmrepo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, gmrepo.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, gmrepo.DefaultDownloadBaseURL, cfg.DownloadBaseURL)
	assert.Equal(t, ".", cfg.DownloadDir)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{BaseURL: "https://example.org/api/"}).WithDefaults()

	assert.Equal(t, "https://example.org/api/", cfg.BaseURL)
	assert.Equal(t, gmrepo.DefaultDownloadBaseURL, cfg.DownloadBaseURL)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 1, cfg.Retry.WaitSeconds)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty is fine", Config{}, false},
		{"valid", Config{BaseURL: "https://gmrepo.humangut.info/api/", Output: "json"}, false},
		{"relative base url", Config{BaseURL: "gmrepo.humangut.info"}, true},
		{"bad output", Config{Output: "xml"}, true},
		{"negative timeout", Config{TimeoutSeconds: -1}, true},
		{"negative retries", Config{Retry: RetryConfig{Count: -2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
