package cmdutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.FromJSON([]byte(`[{"term":"Health","note":"D006262"},{"term":"Obesity","note":"D009765"}]`))
	require.NoError(t, err)
	return tbl
}

func TestWriteTableFormats(t *testing.T) {
	tbl := sampleTable(t)

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, tbl, output.FormatTable))
		assert.Contains(t, buf.String(), "TERM")
		assert.Contains(t, buf.String(), "Health")
	})

	t.Run("json preserves column order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, tbl, output.FormatJSON))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "Health", decoded[0]["term"])
		// key order survives the round trip on the wire
		assert.Less(t, strings.Index(buf.String(), `"term"`), strings.Index(buf.String(), `"note"`))
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, tbl, output.FormatCSV))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "term,note", lines[0])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, tbl, output.FormatYAML))
		assert.Contains(t, buf.String(), "term: Health")
	})

	t.Run("invalid format", func(t *testing.T) {
		err := WriteTable(&bytes.Buffer{}, tbl, output.OutputFormat("bogus"))
		assert.True(t, errors.Is(err, gerrors.ErrValidation))
	})
}

func TestWriteDocument(t *testing.T) {
	doc := map[string]any{"all_records_nr": 4234, "table": "phenotypes"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDocument(&buf, doc, output.FormatJSON))
		assert.Contains(t, buf.String(), `"all_records_nr": 4234`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDocument(&buf, doc, output.FormatYAML))
		assert.Contains(t, buf.String(), "all_records_nr: 4234")
	})

	t.Run("table rejected", func(t *testing.T) {
		err := WriteDocument(&bytes.Buffer{}, doc, output.FormatTable)
		assert.True(t, errors.Is(err, gerrors.ErrValidation))
	})
}
