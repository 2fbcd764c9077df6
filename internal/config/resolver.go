// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"time"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/gmrepo"
	"github.com/gmrepo/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its provenance.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveString resolves one string value using precedence:
// (1) flag, (2) environment variable, (3) config file, (4) default.
func resolveString(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if envName != "" {
		envValue = os.Getenv(envName)
	}

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = defaultValue
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) GMREPO_CONFIG env, (3) ~/.gmrepo/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolveString("config", flagValue, "GMREPO_CONFIG", "", paths.ConfigFile), nil
}

// ResolveAllOptions contains the inputs for ResolveAll.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string
	// BaseURLFlag is the --base-url flag value.
	BaseURLFlag string
	// OutputFlag is the --output flag value (empty if not set by the user).
	OutputFlag string
	// Timeout is the --timeout flag value (zero if not set by the user).
	Timeout time.Duration
	// Config is the loaded config file, may be nil.
	Config *Config
}

// ResolvedConfig contains every resolved configuration value.
type ResolvedConfig struct {
	// ConfigPath is the resolved config file path.
	ConfigPath ResolvedValue
	// BaseURL is the resolved API root.
	BaseURL ResolvedValue
	// DownloadBaseURL is the resolved archive root.
	DownloadBaseURL ResolvedValue
	// DownloadDir is the resolved archive destination directory.
	DownloadDir ResolvedValue
	// Output is the resolved output format.
	Output ResolvedValue
	// Timeout bounds a single API request.
	Timeout time.Duration
	// RetryCount is the number of retries for failed requests.
	RetryCount int
	// RetryWait is the wait between retries.
	RetryWait time.Duration
}

// ResolveAll resolves every configuration value using precedence:
// flag > environment > config file > default.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	configPath, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		ConfigPath: configPath,
		BaseURL: resolveString("baseUrl", opts.BaseURLFlag, "GMREPO_BASE_URL",
			cfg.BaseURL, gmrepo.DefaultBaseURL),
		DownloadBaseURL: resolveString("downloadBaseUrl", "", "GMREPO_DOWNLOAD_BASE_URL",
			cfg.DownloadBaseURL, gmrepo.DefaultDownloadBaseURL),
		DownloadDir: resolveString("downloadDir", "", "GMREPO_DOWNLOAD_DIR",
			cfg.DownloadDir, "."),
		Output: resolveString("output", opts.OutputFlag, "GMREPO_OUTPUT",
			cfg.Output, output.FormatTable.String()),
	}

	if !output.OutputFormat(resolved.Output.Value).IsValid() {
		return nil, gerrors.Wrap(gerrors.ErrValidation,
			fmt.Sprintf("invalid output format %q (from %s), use one of %v",
				resolved.Output.Value, resolved.Output.Source, output.ValidFormats()))
	}

	// Timeout and retries have no env binding; flag beats config beats
	// default.
	switch {
	case opts.Timeout > 0:
		resolved.Timeout = opts.Timeout
	case cfg.TimeoutSeconds > 0:
		resolved.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	default:
		resolved.Timeout = gmrepo.DefaultTimeout
	}

	resolved.RetryCount = cfg.Retry.Count
	if cfg.Retry.WaitSeconds > 0 {
		resolved.RetryWait = time.Duration(cfg.Retry.WaitSeconds) * time.Second
	} else {
		resolved.RetryWait = time.Second
	}

	return resolved, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
