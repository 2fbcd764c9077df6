package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
)

// NewTaxonDetailCmd creates the taxon detail command.
func NewTaxonDetailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail TAXON_ID",
		Short: "Show per-phenotype abundance detail for a taxon",
		Long: `Show the detailed abundance data behind a taxon's phenotype
associations. The result is a document keyed by phenotype.

Examples:
  gmrepo taxon detail 562`,
		Args: requireTaxonID,
		RunE: runTaxonDetail,
	}
}

func runTaxonDetail(cmd *cobra.Command, args []string) error {
	id, err := parseTaxonID(args[0])
	if err != nil {
		return err
	}

	client := NewAPIClient()
	defer client.Close()

	var doc map[string]any
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		doc, ferr = client.TaxonPhenotypeDetails(cmd.Context(), id)
		return ferr
	}, output.WithTitle("Fetching taxon detail..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteDocument(cmd.OutOrStdout(), doc, GetDocumentFormat())
}
