package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gmrepo/cli/internal/cmdutil"
	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/gmrepo"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// NewPhenotypeRunsCmd creates the phenotype runs command.
func NewPhenotypeRunsCmd() *cobra.Command {
	var (
		skipFlag      int
		limitFlag     int
		allFlag       bool
		batchSizeFlag int
	)

	cmd := &cobra.Command{
		Use:   "runs MESH_ID",
		Short: "List runs associated with a phenotype",
		Long: `List sequencing runs associated with the phenotype.

By default a single page is fetched, controlled by --skip and --limit.
With --all, every run is fetched in batches of --batch-size and
concatenated.

Examples:
  # First 20 runs for Health
  gmrepo phenotype runs D006262 --limit 20

  # The next page
  gmrepo phenotype runs D006262 --skip 20 --limit 20

  # Every associated run, fetched in pages of 200
  gmrepo phenotype runs D006262 --all --batch-size 200`,
		Args: requireMeshID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhenotypeRuns(cmd, args, skipFlag, limitFlag, allFlag, batchSizeFlag)
		},
	}

	cmd.Flags().IntVar(&skipFlag, "skip", 0, "Number of runs to skip")
	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of runs to return")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Fetch every associated run in batches")
	cmd.Flags().IntVar(&batchSizeFlag, "batch-size", gmrepo.DefaultBatchSize,
		"Page size when fetching with --all")

	return cmd
}

func runPhenotypeRuns(cmd *cobra.Command, args []string, skip, limit int, all bool, batchSize int) error {
	switch {
	case skip < 0:
		return gerrors.Wrap(gerrors.ErrValidation, "--skip must not be negative")
	case limit <= 0:
		return gerrors.Wrap(gerrors.ErrValidation, "--limit must be positive")
	case batchSize <= 0:
		return gerrors.Wrap(gerrors.ErrValidation, "--batch-size must be positive")
	case all && cmd.Flags().Changed("skip"):
		return gerrors.Wrap(gerrors.ErrValidation, "--skip cannot be combined with --all")
	case all && cmd.Flags().Changed("limit"):
		return gerrors.Wrap(gerrors.ErrValidation, "--limit cannot be combined with --all")
	}

	client := NewAPIClient()
	defer client.Close()

	title := fmt.Sprintf("Fetching runs for %s...", args[0])
	var tbl *table.Table
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		if all {
			tbl, ferr = client.AllAssociatedRuns(cmd.Context(), args[0], batchSize)
		} else {
			tbl, ferr = client.AssociatedRuns(cmd.Context(), args[0], skip, limit)
		}
		return ferr
	}, output.WithTitle(title))
	if err != nil {
		return err
	}

	return cmdutil.WriteTable(cmd.OutOrStdout(), tbl, GetOutputFormat())
}
