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

const gutMicrobesBody = `{
	"all_species":[{"ncbi_taxon_id":562,"scientific_name":"Escherichia coli"}],
	"all_genus":[{"ncbi_taxon_id":561,"scientific_name":"Escherichia"}],
	"metadata":{"loaded_at":"2026-01-01"}
}`

func TestTaxonList(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/get_all_gut_microbes": gutMicrobesBody,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/", "taxon", "list", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Escherichia coli")
	assert.NotContains(t, out, `"Escherichia"`)
}

func TestTaxonListGenera(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/get_all_gut_microbes": gutMicrobesBody,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/", "taxon", "list", "--genera", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Escherichia"`)
	assert.NotContains(t, out, "Escherichia coli")
}

func TestTaxonSummary(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/getPhenotypesAndAbundanceSummaryOfAAssociatedTaxon": `{
			"phenotypes_associated_with_taxon":[{"phenotype":"Health","mean_abundance":1.2}]
		}`,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/", "taxon", "summary", "562", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Health")
}

func TestTaxonIDValidation(t *testing.T) {
	for _, arg := range []string{"abc", "-5", "0"} {
		t.Run(arg, func(t *testing.T) {
			_, err := executeCommand(t, "taxon", "summary", arg)
			assert.True(t, errors.Is(err, gerrors.ErrValidation))
		})
	}
}

func TestTaxonRun(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/getRunDetailsByRunID": `{
			"run":{"run_id":"ERR475468","sample_name":"stool"},
			"species":[{"ncbi_taxon_id":562,"relative_abundance":1.5}]
		}`,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/", "taxon", "run", "ERR475468")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "run")
}

func TestTaxonRunFullProfile(t *testing.T) {
	srv := testutil.APIServer(t, map[string]string{
		"/api/getFullTaxonomicProfileByRunID": `{"profile":[{"rank":"phylum","scientific_name":"Firmicutes"}]}`,
	})

	out, err := executeCommand(t, "--base-url", srv.URL+"/api/", "taxon", "run", "ERR475468", "--full")
	require.NoError(t, err)
	assert.Contains(t, out, "Firmicutes")
}
