package gmrepo

import (
	"context"
	"fmt"

	"github.com/gmrepo/cli/internal/table"
)

// GutMicrobes is the overview of all species and genera known to GMrepo.
type GutMicrobes struct {
	// Species lists every species with prevalence statistics.
	Species *table.Table

	// Genera lists every genus with prevalence statistics.
	Genera *table.Table

	// Metadata describes the snapshot the tables were computed from.
	Metadata map[string]any
}

// AllGutMicrobes returns the species and genera overview tables plus the
// snapshot metadata, from a single API call.
func (c *Client) AllGutMicrobes(ctx context.Context) (*GutMicrobes, error) {
	raw, err := c.post(ctx, EndpointAllGutMicrobes, nil)
	if err != nil {
		return nil, err
	}

	species, err := table.FromJSON(raw, table.WithRootKey("all_species"), table.WithStringCleaner(c.clean.Clean))
	if err != nil {
		return nil, fmt.Errorf("endpoint %s: %w", EndpointAllGutMicrobes, err)
	}
	genera, err := table.FromJSON(raw, table.WithRootKey("all_genus"), table.WithStringCleaner(c.clean.Clean))
	if err != nil {
		return nil, fmt.Errorf("endpoint %s: %w", EndpointAllGutMicrobes, err)
	}

	doc, err := table.DecodeDocument(raw, c.clean.Clean)
	if err != nil {
		return nil, fmt.Errorf("endpoint %s: %w", EndpointAllGutMicrobes, err)
	}
	metadata, _ := doc["metadata"].(map[string]any)

	return &GutMicrobes{
		Species:  species,
		Genera:   genera,
		Metadata: metadata,
	}, nil
}

// TaxonPhenotypeSummary returns a taxon's prevalence and abundance summary
// across all phenotypes.
func (c *Client) TaxonPhenotypeSummary(ctx context.Context, ncbiTaxonID int) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointPhenotypesSummary,
		map[string]any{"ncbi_taxon_id": ncbiTaxonID},
		table.WithRootKey("phenotypes_associated_with_taxon"))
}

// TaxonPhenotypeDetails returns detailed abundance information for a taxon
// across phenotypes.
func (c *Client) TaxonPhenotypeDetails(ctx context.Context, ncbiTaxonID int) (map[string]any, error) {
	return c.fetchDocument(ctx, EndpointAssociatedPhenotypes, map[string]any{"ncbi_taxon_id": ncbiTaxonID})
}

// RunDetails returns the relative abundances recorded for a run. With full
// set, the complete taxonomic profile is returned instead of the default
// species and genus levels.
func (c *Client) RunDetails(ctx context.Context, runID string, full bool) (map[string]any, error) {
	endpoint := EndpointRunDetails
	if full {
		endpoint = EndpointFullProfile
	}
	return c.fetchDocument(ctx, endpoint, map[string]any{"run_id": runID})
}
