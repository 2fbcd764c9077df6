package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gmrepo configuration",
		Long: `Manage the gmrepo CLI configuration stored in ~/.gmrepo/config.yaml.

Values are resolved with precedence: flag > environment > config file >
built-in default.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}
