package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewPhenotypeStatsCmd creates the phenotype stats command.
func NewPhenotypeStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats MESH_ID",
		Short: "Show project statistics for a phenotype",
		Long: `Show per-phenotype statistics: number of projects, runs, and valid
samples for the phenotype identified by MESH_ID.

Examples:
  # Statistics for Health
  gmrepo phenotype stats D006262`,
		Args: requireMeshID,
		RunE: runPhenotypeStats,
	}
}

// requireMeshID validates the single MeSH ID positional argument.
func requireMeshID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return gerrors.Wrap(gerrors.ErrValidation, "exactly one MeSH ID argument is required (e.g. D006262)")
	}
	return nil
}

func runPhenotypeStats(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.PhenotypeStatistics(cmd.Context(), args[0])
		return ferr
	}, output.WithTitle("Fetching statistics..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
