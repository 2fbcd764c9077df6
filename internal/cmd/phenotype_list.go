package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewPhenotypeListCmd creates the phenotype list command.
func NewPhenotypeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all phenotypes",
		Long: `List every phenotype in GMrepo with its MeSH ID and per-phenotype
project, run, species, and genus counts.

Examples:
  # List phenotypes as a table
  gmrepo phenotype list

  # Export the full phenotype catalog as CSV
  gmrepo phenotype list -o csv > phenotypes.csv`,
		Args: cobra.NoArgs,
		RunE: runPhenotypeList,
	}
}

func runPhenotypeList(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.AllPhenotypes(cmd.Context())
		return ferr
	}, output.WithTitle("Fetching phenotypes..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
