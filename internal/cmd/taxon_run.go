package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
)

// NewTaxonRunCmd creates the taxon run command.
func NewTaxonRunCmd() *cobra.Command {
	var fullFlag bool

	cmd := &cobra.Command{
		Use:   "run RUN_ID",
		Short: "Show relative abundances for a run",
		Long: `Show run metadata and the species- and genus-level relative
abundances recorded for a single sequencing run. With --full, the
complete taxonomic profile is returned instead.

Examples:
  # Species and genus abundances
  gmrepo taxon run ERR475468

  # Full taxonomic profile
  gmrepo taxon run ERR475468 --full`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return gerrors.Wrap(gerrors.ErrValidation,
					"exactly one run accession argument is required (e.g. ERR475468)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaxonRun(cmd, args, fullFlag)
		},
	}

	cmd.Flags().BoolVar(&fullFlag, "full", false, "Return the complete taxonomic profile")

	return cmd
}

func runTaxonRun(cmd *cobra.Command, args []string, full bool) error {
	client := NewAPIClient()
	defer client.Close()

	var doc map[string]any
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		doc, ferr = client.RunDetails(cmd.Context(), args[0], full)
		return ferr
	}, output.WithTitle("Fetching run details..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteDocument(cmd.OutOrStdout(), doc, GetDocumentFormat())
}
