package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewPhenotypeSpeciesCmd creates the phenotype species command.
func NewPhenotypeSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species MESH_ID",
		Short: "List species associated with a phenotype",
		Long: `List the species observed in runs associated with the phenotype,
with per-species abundance and prevalence summaries.

Examples:
  gmrepo phenotype species D006262`,
		Args: requireMeshID,
		RunE: runPhenotypeSpecies,
	}
}

func runPhenotypeSpecies(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.AssociatedSpecies(cmd.Context(), args[0])
		return ferr
	}, output.WithTitle("Fetching associated species..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
