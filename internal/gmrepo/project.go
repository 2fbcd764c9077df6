package gmrepo

import (
	"context"

	"github.com/gmrepo/cli/internal/table"
)

// CuratedProjects returns the list of manually curated projects.
func (c *Client) CuratedProjects(ctx context.Context) (*table.Table, error) {
	return c.fetchTable(ctx, EndpointCuratedProjects, nil)
}

// ProjectMicrobeAbundances returns the relative abundances recorded for a
// project, optionally restricted to a phenotype MeSH ID.
func (c *Client) ProjectMicrobeAbundances(ctx context.Context, projectID, meshID string) (map[string]any, error) {
	return c.fetchDocument(ctx, EndpointProjectMicrobeAbundances, map[string]any{
		"project_id": projectID,
		"mesh_id":    meshID,
	})
}
