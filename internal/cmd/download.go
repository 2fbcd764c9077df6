package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/gmrepo"
	"github.com/gmrepo/cli/internal/output"
)

// NewDownloadCmd creates the download command group.
func NewDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download pre-built TSV archives",
		Long: `Download the pre-built, gzip-compressed TSV archives GMrepo publishes
for bulk access. Archives land in the configured download directory
unless --out names an explicit path.`,
	}

	cmd.AddCommand(newDownloadSubCmd(downloadSpec{
		use:     "project-runs PROJECT_ID",
		short:   "Download all runs of a project",
		example: "  gmrepo download project-runs PRJNA489760",
		argHint: "exactly one project accession argument is required (e.g. PRJNA489760)",
		url: func(c *gmrepo.Client, id string) string {
			return c.RunsByProjectURL(id)
		},
	}))
	cmd.AddCommand(newDownloadSubCmd(downloadSpec{
		use:     "phenotype-runs MESH_ID",
		short:   "Download all runs associated with a phenotype",
		example: "  gmrepo download phenotype-runs D006262",
		argHint: "exactly one MeSH ID argument is required (e.g. D006262)",
		url: func(c *gmrepo.Client, id string) string {
			return c.RunsByPhenotypeURL(id)
		},
	}))
	cmd.AddCommand(newDownloadSubCmd(downloadSpec{
		use:     "species MESH_ID",
		short:   "Download species associated with a phenotype",
		example: "  gmrepo download species D006262",
		argHint: "exactly one MeSH ID argument is required (e.g. D006262)",
		url: func(c *gmrepo.Client, id string) string {
			return c.SpeciesByPhenotypeURL(id)
		},
	}))
	cmd.AddCommand(newDownloadSubCmd(downloadSpec{
		use:     "genera MESH_ID",
		short:   "Download genera associated with a phenotype",
		example: "  gmrepo download genera D006262",
		argHint: "exactly one MeSH ID argument is required (e.g. D006262)",
		url: func(c *gmrepo.Client, id string) string {
			return c.GeneraByPhenotypeURL(id)
		},
	}))

	return cmd
}

// downloadSpec describes one archive download subcommand. The four archives
// differ only in URL shape and identifier kind.
type downloadSpec struct {
	use     string
	short   string
	example string
	argHint string
	url     func(*gmrepo.Client, string) string
}

func newDownloadSubCmd(spec downloadSpec) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Long:  spec.short + ".\n\nExamples:\n" + spec.example,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return gerrors.Wrap(gerrors.ErrValidation, spec.argHint)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, args[0], outFlag, spec.url)
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Destination path (default: archive name in the download directory)")

	return cmd
}

func runDownload(cmd *cobra.Command, id, out string, urlFn func(*gmrepo.Client, string) string) error {
	client := NewAPIClient()
	defer client.Close()

	url := urlFn(client, id)
	dest := out
	if dest == "" {
		dest = filepath.Join(GetDownloadDir(), gmrepo.FileNameFromURL(url))
	}

	var written string
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var ferr error
		written, ferr = client.DownloadFile(cmd.Context(), url, dest)
		return ferr
	}, output.WithTitle(fmt.Sprintf("Downloading %s...", gmrepo.FileNameFromURL(url))))
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Downloaded " + written))
	return nil
}
