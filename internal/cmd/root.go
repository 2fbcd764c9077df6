// Package cmd provides CLI command implementations.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/config"
	"github.com/gmrepo/cli/internal/gmrepo"
	"github.com/gmrepo/cli/internal/output"
)

var (
	// Global flags
	configFlag       string
	baseURLFlag      string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool
	timeoutFlag      time.Duration

	// Resolved configuration (loaded during PersistentPreRunE)
	fileConfig     *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the gmrepo CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gmrepo",
		Short:         "GMrepo human gut microbiome CLI",
		Long:          `gmrepo queries the GMrepo database of curated human gut metagenomes: phenotypes, projects, runs, and microbial abundance data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: GMREPO_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "GMrepo API root (env: GMREPO_BASE_URL)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: table, json, csv, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout (e.g. 30s)")

	// Add subcommands
	rootCmd.AddCommand(NewPhenotypeCmd())
	rootCmd.AddCommand(NewTaxonCmd())
	rootCmd.AddCommand(NewProjectCmd())
	rootCmd.AddCommand(NewDownloadCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Load configuration first so config values can drive logging setup
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands still work on flags and defaults
	}
	fileConfig = loaded

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:  configFlag,
		BaseURLFlag: baseURLFlag,
		OutputFlag:  outputFormatFlag,
		Timeout:     timeoutFlag,
		Config:      fileConfig,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if fileConfig != nil && fileConfig.Log.Timestamps != nil {
		logCfg.Timestamps = fileConfig.Log.Timestamps
	}
	// else: nil means SetupLogging defaults to true

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolvedConfig.ConfigPath.Value,
			"base_url", resolvedConfig.BaseURL.Value,
			"output", resolvedConfig.Output.Value,
			"timeout", resolvedConfig.Timeout,
		)
		config.LogResolvedValues([]config.ResolvedValue{
			resolvedConfig.ConfigPath,
			resolvedConfig.BaseURL,
			resolvedConfig.DownloadBaseURL,
			resolvedConfig.DownloadDir,
			resolvedConfig.Output,
		})
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	return configFlag
}

// GetBaseURL returns the resolved API root.
func GetBaseURL() string {
	if resolvedConfig != nil {
		return resolvedConfig.BaseURL.Value
	}
	return baseURLFlag
}

// GetOutputFormat returns the resolved output format.
func GetOutputFormat() output.OutputFormat {
	if resolvedConfig != nil {
		return output.ParseOutputFormat(resolvedConfig.Output.Value)
	}
	return output.ParseOutputFormat(outputFormatFlag)
}

// GetDocumentFormat returns the output format for document-shaped results.
// Documents have no tabular rendering, so the built-in table default maps
// to json; an explicit choice is passed through and validated downstream.
func GetDocumentFormat() output.OutputFormat {
	if resolvedConfig != nil && resolvedConfig.Output.Source == config.SourceDefault {
		return output.FormatJSON
	}
	return GetOutputFormat()
}

// GetDownloadDir returns the resolved archive destination directory.
func GetDownloadDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.DownloadDir.Value
	}
	return "."
}

// NewAPIClient builds a gmrepo client from the resolved configuration.
func NewAPIClient() *gmrepo.Client {
	opts := gmrepo.Options{
		BaseURL: GetBaseURL(),
	}
	if resolvedConfig != nil {
		opts.DownloadBaseURL = resolvedConfig.DownloadBaseURL.Value
		opts.Timeout = resolvedConfig.Timeout
		opts.RetryCount = resolvedConfig.RetryCount
		opts.RetryWaitTime = resolvedConfig.RetryWait
	}
	return gmrepo.New(opts)
}
