package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gmrepo/cli/internal/config"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
)

var configInitForce bool

// configFileHeader is prepended to the generated config file.
const configFileHeader = `# gmrepo CLI configuration.
# Values here are overridden by GMREPO_* environment variables and by
# command-line flags.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the gmrepo CLI configuration.

Creates ~/.gmrepo/config.yaml populated with the built-in defaults:
  - API and archive download roots
  - Default output format
  - Request timeout and retry settings

Examples:
  # Initialize configuration
  gmrepo config init

  # Overwrite existing configuration
  gmrepo config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return gerrors.Wrap(gerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &gerrors.DetailError{
			Type:    "validation failed",
			Message: "configuration already exists",
			Context: map[string]string{"path": paths.ConfigFile},
			Hint:    "Use --force to overwrite existing configuration.",
			Cause:   gerrors.ErrValidation,
		}
	}

	if err := config.EnsureHomeDir(); err != nil {
		return gerrors.Wrap(err, "could not create ~/.gmrepo directory")
	}

	body, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}
	content := append([]byte(configFileHeader), body...)

	if err := os.WriteFile(paths.ConfigFile, content, 0o600); err != nil {
		return gerrors.Wrap(err, "could not write config.yaml")
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + paths.ConfigFile))
	output.Println("")
	output.Println("Validate with: gmrepo config vet")

	return nil
}
