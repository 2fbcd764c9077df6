package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	gerrors "github.com/gmrepo/cli/internal/errors"
)

// NewTaxonCmd creates the taxon command group.
func NewTaxonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxon",
		Short: "Query gut microbes and taxon-centric data",
		Long: `Query the GMrepo gut microbe catalog and taxon-centric views: which
phenotypes a taxon is associated with, and the run-level detail behind
those associations.`,
	}

	cmd.AddCommand(NewTaxonListCmd())
	cmd.AddCommand(NewTaxonSummaryCmd())
	cmd.AddCommand(NewTaxonDetailCmd())
	cmd.AddCommand(NewTaxonRunCmd())

	return cmd
}

// parseTaxonID parses a positional NCBI taxonomy ID argument.
func parseTaxonID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, gerrors.Wrap(gerrors.ErrValidation,
			"NCBI taxonomy ID must be a positive integer (e.g. 562)")
	}
	return id, nil
}

// requireTaxonID validates the single taxonomy ID positional argument.
func requireTaxonID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return gerrors.Wrap(gerrors.ErrValidation,
			"exactly one NCBI taxonomy ID argument is required (e.g. 562)")
	}
	_, err := parseTaxonID(args[0])
	return err
}
