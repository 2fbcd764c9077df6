package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
)

// NewProjectAbundanceCmd creates the project abundance command.
func NewProjectAbundanceCmd() *cobra.Command {
	var phenotypeFlag string

	cmd := &cobra.Command{
		Use:   "abundance PROJECT_ID",
		Short: "Show abundance data for a project",
		Long: `Show microbe abundance data scoped to a single project, optionally
restricted to one phenotype with --phenotype.

Examples:
  # All abundance data for a project
  gmrepo project abundance PRJNA489760

  # Only the Health runs of the project
  gmrepo project abundance PRJNA489760 --phenotype D006262`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return gerrors.Wrap(gerrors.ErrValidation,
					"exactly one project accession argument is required (e.g. PRJNA489760)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectAbundance(cmd, args, phenotypeFlag)
		},
	}

	cmd.Flags().StringVar(&phenotypeFlag, "phenotype", "", "Restrict to one phenotype MeSH ID")

	return cmd
}

func runProjectAbundance(cmd *cobra.Command, args []string, meshID string) error {
	client := NewAPIClient()
	defer client.Close()

	var doc map[string]any
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		doc, ferr = client.ProjectMicrobeAbundances(cmd.Context(), args[0], meshID)
		return ferr
	}, output.WithTitle("Fetching project abundances..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteDocument(cmd.OutOrStdout(), doc, GetDocumentFormat())
}
