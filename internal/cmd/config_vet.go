package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/config"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the gmrepo CLI configuration file.

Checks that the config file parses and that its values can work: the
API root is an absolute URL, the output format is known, and timeouts
and retry counts are not negative.

Examples:
  gmrepo config vet
  gmrepo --config ./custom.yaml config vet`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath := GetConfigPath()

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if !exists {
		return &gerrors.DetailError{
			Type:    "not found",
			Message: "no configuration file",
			Context: map[string]string{"path": configPath},
			Hint:    "Run 'gmrepo config init' to create one.",
			Cause:   gerrors.ErrNotFound,
		}
	}

	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return &gerrors.DetailError{
			Type:    "validation failed",
			Message: err.Error(),
			Context: map[string]string{"path": configPath},
			Cause:   gerrors.ErrValidation,
		}
	}

	if err := cfg.Validate(); err != nil {
		return &gerrors.DetailError{
			Type:    "validation failed",
			Message: err.Error(),
			Context: map[string]string{"path": configPath},
			Cause:   gerrors.ErrValidation,
		}
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configPath))
	return nil
}
