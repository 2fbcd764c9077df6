package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewProjectListCmd creates the project list command.
func NewProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List curated projects",
		Long: `List every manually curated project with its run counts and
associated phenotypes.

Examples:
  gmrepo project list
  gmrepo project list -o json`,
		Args: cobra.NoArgs,
		RunE: runProjectList,
	}
}

func runProjectList(cmd *cobra.Command, args []string) error {
	client := NewAPIClient()
	defer client.Close()

	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		tbl, ferr = client.CuratedProjects(cmd.Context())
		return ferr
	}, output.WithTitle("Fetching curated projects..."))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
