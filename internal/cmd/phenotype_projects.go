package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewPhenotypeProjectsCmd creates the phenotype projects command.
func NewPhenotypeProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects MESH_ID",
		Short: "List projects associated with a phenotype",
		Long: `List the sequencing projects that contain runs associated with the
phenotype.

Examples:
  gmrepo phenotype projects D006262`,
		Args: requireMeshID,
		RunE: runPhenotypeProjects,
	}
}

func runPhenotypeProjects(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.AssociatedProjects(cmd.Context(), args[0])
		return ferr
	}, output.WithTitle("Fetching associated projects..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
