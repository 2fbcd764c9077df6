package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/gmrepo"
	"github.com/gmrepo/cli/internal/output"
)

// NewTaxonListCmd creates the taxon list command.
func NewTaxonListCmd() *cobra.Command {
	var generaFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all gut microbes",
		Long: `List every species known to GMrepo with prevalence statistics.
With --genera, list genera instead.

Examples:
  # All species
  gmrepo taxon list

  # All genera, as CSV
  gmrepo taxon list --genera -o csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaxonList(cmd, generaFlag)
		},
	}

	cmd.Flags().BoolVar(&generaFlag, "genera", false, "List genera instead of species")

	return cmd
}

func runTaxonList(cmd *cobra.Command, genera bool) error {
	client := NewAPIClient()
	defer client.Close()

	var microbes *gmrepo.GutMicrobes
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		microbes, ferr = client.AllGutMicrobes(cmd.Context())
		return ferr
	}, output.WithTitle("Fetching gut microbes..."))
	if err != nil {
		return err
	}

	tbl := microbes.Species
	if genera {
		tbl = microbes.Genera
	}
	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
