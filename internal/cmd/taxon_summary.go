package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewTaxonSummaryCmd creates the taxon summary command.
func NewTaxonSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary TAXON_ID",
		Short: "Summarize a taxon across phenotypes",
		Long: `Show a taxon's prevalence and mean abundance in every phenotype it
has been observed in.

Examples:
  # Escherichia coli across phenotypes
  gmrepo taxon summary 562`,
		Args: requireTaxonID,
		RunE: runTaxonSummary,
	}
}

func runTaxonSummary(cmd *cobra.Command, args []string) error {
	id, err := parseTaxonID(args[0])
	if err != nil {
		return err
	}

	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.TaxonPhenotypeSummary(cmd.Context(), id)
		return ferr
	}, output.WithTitle("Fetching taxon summary..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
