package gmrepo

import (
	"context"
	"fmt"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// AllPhenotypes returns every phenotype in GMrepo with its statistics.
func (c *Client) AllPhenotypes(ctx context.Context) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointAllPhenotypes, nil, table.WithRootKey("phenotypes"))
}

// PhenotypeStatistics returns project and sample statistics for a
// phenotype MeSH ID.
func (c *Client) PhenotypeStatistics(ctx context.Context, meshID string) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointStatsByMeshID, map[string]any{"mesh_id": meshID})
}

// AssociatedSpecies returns the species associated with a phenotype.
func (c *Client) AssociatedSpecies(ctx context.Context, meshID string) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointAssociatedSpecies, map[string]any{"mesh_id": meshID})
}

// AssociatedGenera returns the genera associated with a phenotype.
func (c *Client) AssociatedGenera(ctx context.Context, meshID string) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointAssociatedGenera, map[string]any{"mesh_id": meshID})
}

// AssociatedProjects returns the projects associated with a phenotype.
func (c *Client) AssociatedProjects(ctx context.Context, meshID string) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointAssociatedProjects, map[string]any{"mesh_id": meshID})
}

// CountAssociatedRuns returns the number of runs associated with a
// phenotype.
func (c *Client) CountAssociatedRuns(ctx context.Context, meshID string) (int, error) {
	t, err := c.fetchTable(ctx, EndpointCountRuns, map[string]any{"mesh_id": meshID})
	if err != nil {
		return 0, err
	}

	v, ok := t.First()
	if !ok {
		return 0, fmt.Errorf("endpoint %s: empty response", EndpointCountRuns)
	}
	n, err := asInt(v)
	if err != nil {
		return 0, fmt.Errorf("endpoint %s: %w", EndpointCountRuns, err)
	}
	return n, nil
}

// AssociatedRuns returns one page of runs associated with a phenotype.
func (c *Client) AssociatedRuns(ctx context.Context, meshID string, skip, limit int) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointAssociatedRuns, map[string]any{
		"mesh_id": meshID,
		"skip":    skip,
		"limit":   limit,
	})
}

// AllAssociatedRuns fetches every run associated with a phenotype, paging
// through the runs endpoint in batches and concatenating the results.
func (c *Client) AllAssociatedRuns(ctx context.Context, meshID string, batchSize int) (*table.Table, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	total, err := c.CountAssociatedRuns(ctx, meshID)
	if err != nil {
		return nil, err
	}

	var pages []*table.Table
	for skip := 0; skip < total; skip += batchSize {
		output.Debug("fetching runs", "mesh_id", meshID, "skip", skip, "limit", batchSize, "total", total)

		page, err := c.AssociatedRuns(ctx, meshID, skip, batchSize)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	if len(pages) == 0 {
		return table.New(), nil
	}
	return pages[0].Concat(pages[1:]...), nil
}

// MicrobeAbundances returns the relative abundances of a taxon across the
// samples of a phenotype.
func (c *Client) MicrobeAbundances(ctx context.Context, meshID, ncbiTaxonID string) (map[string]any, error) {
	return c.fetchDocument(ctx, EndpointMicrobeAbundances, map[string]any{
		"mesh_id":       meshID,
		"ncbi_taxon_id": ncbiTaxonID,
	})
}

// Prevalence computes per-row prevalence percentages: the "samples" column
// of an associated species or genera table divided by the phenotype's
// nr_valid_samples statistic.
func Prevalence(taxa *table.Table, stats *table.Table) ([]float64, error) {
	samples, err := taxa.Floats("samples")
	if err != nil {
		return nil, fmt.Errorf("reading samples column: %w", err)
	}

	cell, ok := stats.Lookup("field", "nr_valid_samples", "stats")
	if !ok {
		return nil, gerrors.Wrap(gerrors.ErrValidation, "statistics table has no nr_valid_samples entry")
	}
	nrValid, err := asInt(cell)
	if err != nil || nrValid == 0 {
		return nil, gerrors.Wrap(gerrors.ErrValidation, "nr_valid_samples is not a positive number")
	}

	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s / float64(nrValid) * 100
	}
	return out, nil
}
