package table

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONRecords(t *testing.T) {
	raw := []byte(`[
		{"scientific_name": "Bacteroides", "taxon_id": 816},
		{"scientific_name": "Prevotella", "taxon_id": 838, "extra": "late column"}
	]`)

	tbl, err := FromJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"scientific_name", "taxon_id", "extra"}, tbl.Columns())
	require.Equal(t, 2, tbl.Len())

	v, ok := tbl.Cell(0, "extra")
	require.True(t, ok)
	assert.Nil(t, v)

	v, ok = tbl.Cell(1, "taxon_id")
	require.True(t, ok)
	assert.Equal(t, json.Number("838"), v)
}

func TestFromJSONColumnOriented(t *testing.T) {
	raw := []byte(`{"run_id": ["ERR1", "ERR2", "ERR3"], "phenotype": ["Health", "Health"], "total": 3}`)

	tbl, err := FromJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"run_id", "phenotype", "total"}, tbl.Columns())
	require.Equal(t, 3, tbl.Len())

	// Short columns pad with nil, scalars broadcast.
	v, ok := tbl.Cell(2, "phenotype")
	require.True(t, ok)
	assert.Nil(t, v)

	v, ok = tbl.Cell(2, "total")
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), v)
}

func TestFromJSONNestedObjects(t *testing.T) {
	raw := []byte(`{"stats": {"nr_valid_samples": 1200, "nr_runs": 1500}}`)

	tbl, err := FromJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"field", "stats"}, tbl.Columns())
	require.Equal(t, 2, tbl.Len())

	v, ok := tbl.Lookup("field", "nr_valid_samples", "stats")
	require.True(t, ok)
	assert.Equal(t, json.Number("1200"), v)
}

func TestFromJSONScalarObject(t *testing.T) {
	raw := []byte(`{"counts": 5120}`)

	tbl, err := FromJSON(raw)
	require.NoError(t, err)

	require.Equal(t, 1, tbl.Len())
	v, ok := tbl.First()
	require.True(t, ok)
	assert.Equal(t, json.Number("5120"), v)
}

func TestFromJSONEmptyObject(t *testing.T) {
	tbl, err := FromJSON([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, tbl.Columns())
	assert.Equal(t, 0, tbl.Len())
}

func TestFromJSONScalarArray(t *testing.T) {
	raw := []byte(`[1, 2, 3]`)

	tbl, err := FromJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"value"}, tbl.Columns())
	assert.Equal(t, 3, tbl.Len())
}

func TestFromJSONRootKey(t *testing.T) {
	raw := []byte(`{"phenotypes": [{"term": "Health", "mesh_id": "D006262"}], "metadata": {}}`)

	t.Run("selects key", func(t *testing.T) {
		tbl, err := FromJSON(raw, WithRootKey("phenotypes"))
		require.NoError(t, err)

		assert.Equal(t, []string{"term", "mesh_id"}, tbl.Columns())
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("missing key yields empty table", func(t *testing.T) {
		tbl, err := FromJSON(raw, WithRootKey("absent"))
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("non-object root is an error", func(t *testing.T) {
		_, err := FromJSON([]byte(`[1]`), WithRootKey("phenotypes"))
		assert.Error(t, err)
	})
}

func TestFromJSONStringCleaner(t *testing.T) {
	raw := []byte(`[{"term": "Health\r\n", "mesh_id": " D006262 "}]`)

	clean := func(s string) string {
		s = strings.ReplaceAll(s, "\r", "")
		s = strings.ReplaceAll(s, "\n", "")
		return strings.TrimSpace(s)
	}

	tbl, err := FromJSON(raw, WithStringCleaner(clean))
	require.NoError(t, err)

	v, ok := tbl.Cell(0, "term")
	require.True(t, ok)
	assert.Equal(t, "Health", v)

	v, ok = tbl.Cell(0, "mesh_id")
	require.True(t, ok)
	assert.Equal(t, "D006262", v)
}

func TestFromJSONKeyOrderPreserved(t *testing.T) {
	raw := []byte(`[{"z": 1, "m": 2, "a": 3}]`)

	tbl, err := FromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, tbl.Columns())
}

func TestFromJSONMalformed(t *testing.T) {
	_, err := FromJSON([]byte(`{"a": `))
	assert.Error(t, err)

	_, err = FromJSON([]byte(`{} trailing`))
	assert.Error(t, err)
}

func TestDecodeDocument(t *testing.T) {
	raw := []byte(`{"abundance": [0.1, 0.2], "taxon": {"name": "Bacteroides\n"}}`)

	clean := func(s string) string { return strings.TrimSuffix(s, "\n") }

	doc, err := DecodeDocument(raw, clean)
	require.NoError(t, err)

	taxon, ok := doc["taxon"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bacteroides", taxon["name"])

	_, err = DecodeDocument([]byte(`[1]`), nil)
	assert.Error(t, err)
}
