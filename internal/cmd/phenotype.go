// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewPhenotypeCmd creates the phenotype command group.
func NewPhenotypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phenotype",
		Short: "Query phenotypes and their associated data",
		Long: `Query GMrepo phenotypes (diseases and host states, keyed by MeSH ID)
and the species, genera, projects, and runs associated with them.`,
	}

	cmd.AddCommand(NewPhenotypeListCmd())
	cmd.AddCommand(NewPhenotypeStatsCmd())
	cmd.AddCommand(NewPhenotypeSpeciesCmd())
	cmd.AddCommand(NewPhenotypeGeneraCmd())
	cmd.AddCommand(NewPhenotypeProjectsCmd())
	cmd.AddCommand(NewPhenotypeRunsCmd())
	cmd.AddCommand(NewPhenotypeAbundanceCmd())

	return cmd
}
