// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"net/url"

	"github.com/gmrepo/cli/internal/gmrepo"
	"github.com/gmrepo/cli/internal/output"
)

// RetryConfig contains request retry settings.
type RetryConfig struct {
	// Count is the number of retries for failed requests.
	// Default: 0 (no retries).
	Count int `mapstructure:"count" yaml:"count,omitempty"`

	// WaitSeconds is the wait between retries in seconds.
	// Default: 1.
	WaitSeconds int `mapstructure:"waitSeconds" yaml:"waitSeconds,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: follows --verbose. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the gmrepo CLI configuration.
// Loaded from ~/.gmrepo/config.yaml.
type Config struct {
	// BaseURL is the GMrepo API root.
	// Env: GMREPO_BASE_URL
	BaseURL string `mapstructure:"baseUrl" yaml:"baseUrl,omitempty"`

	// DownloadBaseURL is the root for pre-built TSV archives.
	// Env: GMREPO_DOWNLOAD_BASE_URL
	DownloadBaseURL string `mapstructure:"downloadBaseUrl" yaml:"downloadBaseUrl,omitempty"`

	// DownloadDir is the directory archive downloads land in.
	// Env: GMREPO_DOWNLOAD_DIR, Default: current directory
	DownloadDir string `mapstructure:"downloadDir" yaml:"downloadDir,omitempty"`

	// Output is the default output format: table, json, csv, yaml.
	// Env: GMREPO_OUTPUT
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// TimeoutSeconds bounds a single API request, in seconds.
	TimeoutSeconds int `mapstructure:"timeoutSeconds" yaml:"timeoutSeconds,omitempty"`

	// Retry contains request retry settings.
	Retry RetryConfig `mapstructure:"retry" yaml:"retry,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `gmrepo config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         gmrepo.DefaultBaseURL,
		DownloadBaseURL: gmrepo.DefaultDownloadBaseURL,
		DownloadDir:     ".",
		Output:          output.FormatTable.String(),
		TimeoutSeconds:  int(gmrepo.DefaultTimeout.Seconds()),
	}
}

// WithDefaults fills empty fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.DownloadBaseURL == "" {
		c.DownloadBaseURL = def.DownloadBaseURL
	}
	if c.DownloadDir == "" {
		c.DownloadDir = def.DownloadDir
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.Retry.WaitSeconds == 0 {
		c.Retry.WaitSeconds = 1
	}
	return c
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("baseUrl %q is not an absolute URL", c.BaseURL)
		}
	}
	if c.Output != "" && !output.OutputFormat(c.Output).IsValid() {
		return fmt.Errorf("output %q is not one of %v", c.Output, output.ValidFormats())
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeoutSeconds must not be negative")
	}
	if c.Retry.Count < 0 {
		return fmt.Errorf("retry.count must not be negative")
	}
	return nil
}
