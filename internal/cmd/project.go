package cmd

import (
	"github.com/spf13/cobra"
)

// NewProjectCmd creates the project command group.
func NewProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Query curated sequencing projects",
		Long: `Query the manually curated sequencing projects in GMrepo and the
abundance data scoped to a single project.`,
	}

	cmd.AddCommand(NewProjectListCmd())
	cmd.AddCommand(NewProjectAbundanceCmd())

	return cmd
}
