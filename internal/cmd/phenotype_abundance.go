package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
)

// NewPhenotypeAbundanceCmd creates the phenotype abundance command.
func NewPhenotypeAbundanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abundance MESH_ID TAXON_ID",
		Short: "Show abundance of a taxon in a phenotype",
		Long: `Show the relative abundance of a taxon (NCBI taxonomy ID) across all
runs associated with the phenotype. The result is a document holding
abundance records, data-summary tables, and histogram bins.

Examples:
  # Escherichia coli in Health
  gmrepo phenotype abundance D006262 562`,
		Args: requireMeshAndTaxonID,
		RunE: runPhenotypeAbundance,
	}
}

// requireMeshAndTaxonID validates the MESH_ID TAXON_ID argument pair.
func requireMeshAndTaxonID(cmd *cobra.Command, args []string) error {
	if len(args) != 2 || args[0] == "" || args[1] == "" {
		return gerrors.Wrap(gerrors.ErrValidation,
			"a MeSH ID and an NCBI taxonomy ID are required (e.g. D006262 562)")
	}
	return nil
}

func runPhenotypeAbundance(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var doc map[string]any
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		doc, ferr = client.MicrobeAbundances(cmd.Context(), args[0], args[1])
		return ferr
	}, output.WithTitle("Fetching abundances..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteDocument(cmd.OutOrStdout(), doc, GetDocumentFormat())
}
