package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/testutil"
)

func TestProjectList(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/getCuratedProjectsList": `[
			{"project_id":"PRJNA489760","nr_runs":200},
			{"project_id":"PRJEB6070","nr_runs":1000}
		]`,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/", "project", "list", "-o", "json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "PRJNA489760", rows[0]["project_id"])
}

func TestProjectAbundance(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/getMicrobeAbundancesByPhenotypeMeshIDAndProjectID": `{
			"abundance_and_meta_data":[{"run_id":"SRR6351586","relative_abundance":2.3}]
		}`,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/",
		"project", "abundance", "PRJNA489760", "--phenotype", "D006262")
	require.NoError(t, err)
	assert.Contains(t, out, "SRR6351586")
}

func TestProjectAbundanceRequiresID(t *testing.T) {
	_, err := executeCommand(t, "project", "abundance")
	assert.True(t, errors.Is(err, gerrors.ErrValidation))
}
