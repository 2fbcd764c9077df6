package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	dtable "github.com/gmrepo/cli/internal/table"
)

func TestRenderTable(t *testing.T) {
	tbl := dtable.New("scientific_name", "samples").
		Row("Bacteroides", json.Number("120")).
		Row("Prevotella", json.Number("45"))

	out := RenderTable(tbl)

	assert.Contains(t, out, "SCIENTIFIC_NAME")
	assert.Contains(t, out, "SAMPLES")
	assert.Contains(t, out, "Bacteroides")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "(2 rows)")
}

func TestRenderTableTruncatesWideCells(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	tbl := dtable.New("description").Row(string(long))
	out := RenderTable(tbl)

	assert.NotContains(t, out, string(long))
	assert.Contains(t, out, "…")
}
