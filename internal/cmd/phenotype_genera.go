package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewPhenotypeGeneraCmd creates the phenotype genera command.
func NewPhenotypeGeneraCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genera MESH_ID",
		Short: "List genera associated with a phenotype",
		Long: `List the genera observed in runs associated with the phenotype,
with per-genus abundance and prevalence summaries.

Examples:
  gmrepo phenotype genera D006262`,
		Args: requireMeshID,
		RunE: runPhenotypeGenera,
	}
}

func runPhenotypeGenera(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.AssociatedGenera(cmd.Context(), args[0])
		return ferr
	}, output.WithTitle("Fetching associated genera..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
