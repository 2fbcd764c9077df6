package gmrepo

import (
	"context"
	"fmt"
	"os"
	"strings"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
)

// Archive URL builders for GMrepo's pre-built TSV downloads.

// RunsByProjectURL returns the archive URL for all runs in a project.
func (c *Client) RunsByProjectURL(projectID string) string {
	return fmt.Sprintf("%sRunsByProjectID/all_runs_in_project_%s.tsv.gz", c.downloadURL, projectID)
}

// RunsByPhenotypeURL returns the archive URL for all runs associated with a
// phenotype.
func (c *Client) RunsByPhenotypeURL(meshID string) string {
	return fmt.Sprintf("%sRunsByPhenotypeID/all_runs_associated_with_%s.tsv.gz", c.downloadURL, meshID)
}

// SpeciesByPhenotypeURL returns the archive URL for species associated
// with a phenotype.
func (c *Client) SpeciesByPhenotypeURL(meshID string) string {
	return fmt.Sprintf("%sSpeciesAndGeneraAssociatedWithPhenotypeID/species_associated_with_%s.tsv.gz", c.downloadURL, meshID)
}

// GeneraByPhenotypeURL returns the archive URL for genera associated with
// a phenotype.
func (c *Client) GeneraByPhenotypeURL(meshID string) string {
	return fmt.Sprintf("%sSpeciesAndGeneraAssociatedWithPhenotypeID/genus_associated_with_%s.tsv.gz", c.downloadURL, meshID)
}

// FileNameFromURL derives the default destination file name from an
// archive URL.
func FileNameFromURL(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// DownloadFile streams the archive at url to dest. An empty dest defaults
// to the URL base name. Returns the path written.
func (c *Client) DownloadFile(ctx context.Context, url, dest string) (string, error) {
	if dest == "" {
		dest = FileNameFromURL(url)
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetOutputFileName(dest).
		Get(url)
	if err != nil {
		return "", gerrors.NewConnectivityError(
			fmt.Sprintf("download of %s failed: %v", url, err),
			map[string]string{"url": url},
			"check network connectivity",
		)
	}
	if res.StatusCode() == 404 {
		// resty saved the upstream error page to dest before the status
		// was known
		_ = os.Remove(dest)
		return "", gerrors.NewNotFoundError(fmt.Sprintf("no archive at %s", url), url,
			"verify the project or phenotype identifier")
	}
	if res.IsError() {
		_ = os.Remove(dest)
		return "", gerrors.NewAPIError(fmt.Sprintf("download of %s answered %s", url, res.Status()), url, res.Status())
	}

	output.Debug("downloaded archive", "url", url, "dest", dest)
	return dest, nil
}
