// Package table provides the tabular data model for GMrepo API results.
//
// API responses arrive as JSON in several shapes (arrays of records,
// column-oriented objects, nested statistics objects); this package decodes
// all of them into a single Table type with column-ordered rows, and exports
// records, CSV, and JSON views of the data.
package table

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Table is a column-ordered collection of rows. Cells hold decoded JSON
// values: string, json.Number, bool, nil, or nested objects and arrays.
type Table struct {
	cols []string
	rows [][]any
}

// New creates an empty table with the given columns.
func New(cols ...string) *Table {
	return &Table{
		cols: append([]string(nil), cols...),
		rows: make([][]any, 0),
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row appends a row. Missing cells are filled with nil, extra cells are
// dropped.
func (t *Table) Row(cells ...any) *Table {
	row := make([]any, len(t.cols))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// colIndex returns the index of the named column, or -1.
func (t *Table) colIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at the given row and column.
func (t *Table) Cell(row int, col string) (any, bool) {
	i := t.colIndex(col)
	if i < 0 || row < 0 || row >= len(t.rows) {
		return nil, false
	}
	return t.rows[row][i], true
}

// First returns the first cell of the first row. The run-count endpoint
// answers with a single-cell table, so this is the scalar accessor.
func (t *Table) First() (any, bool) {
	if len(t.rows) == 0 || len(t.cols) == 0 {
		return nil, false
	}
	return t.rows[0][0], true
}

// Column returns all values of the named column.
func (t *Table) Column(name string) ([]any, bool) {
	i := t.colIndex(name)
	if i < 0 {
		return nil, false
	}
	vals := make([]any, len(t.rows))
	for r, row := range t.rows {
		vals[r] = row[i]
	}
	return vals, true
}

// Floats returns the named column coerced to float64.
func (t *Table) Floats(name string) ([]float64, error) {
	vals, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		out[i] = f
	}
	return out, nil
}

// Lookup finds the first row where indexCol equals indexVal (compared by
// rendered value) and returns that row's cell in col. Used against
// statistics tables decoded from nested objects, where the inner keys land
// in an index column.
func (t *Table) Lookup(indexCol, indexVal, col string) (any, bool) {
	ii := t.colIndex(indexCol)
	ci := t.colIndex(col)
	if ii < 0 || ci < 0 {
		return nil, false
	}
	for _, row := range t.rows {
		if renderCell(row[ii]) == indexVal {
			return row[ci], true
		}
	}
	return nil, false
}

// Concat appends the rows of the given tables. Columns are unioned in
// first-seen order; missing cells become nil.
func (t *Table) Concat(others ...*Table) *Table {
	out := New(t.cols...)
	tables := append([]*Table{t}, others...)
	for _, src := range tables {
		for _, c := range src.cols {
			if out.colIndex(c) < 0 {
				out.cols = append(out.cols, c)
			}
		}
	}
	for _, src := range tables {
		for _, row := range src.rows {
			cells := make([]any, len(out.cols))
			for i, c := range src.cols {
				cells[out.colIndex(c)] = row[i]
			}
			out.rows = append(out.rows, cells)
		}
	}
	return out
}

// Records returns the rows as maps. Nested objects are converted to
// map[string]any.
func (t *Table) Records() []map[string]any {
	recs := make([]map[string]any, len(t.rows))
	for r, row := range t.rows {
		rec := make(map[string]any, len(t.cols))
		for i, c := range t.cols {
			rec[c] = toGoValue(row[i])
		}
		recs[r] = rec
	}
	return recs
}

// Strings returns every cell rendered for display, one slice per row.
func (t *Table) Strings() [][]string {
	out := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = renderCell(v)
		}
		out[r] = cells
	}
	return out
}

// ToCSV writes the table as CSV with a header row.
func (t *Table) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Strings() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalJSON renders the table as an array of records, preserving column
// order within each record.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for r, row := range t.rows {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, c := range t.cols {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(c)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(toGoValue(row[i]))
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// toFloat coerces a cell to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}

// renderCell renders a cell for CSV and terminal display.
func renderCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case json.Number:
		return c.String()
	case bool:
		return strconv.FormatBool(c)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	default:
		// Nested objects and arrays render as compact JSON.
		b, err := json.Marshal(toGoValue(v))
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// toGoValue converts decoded values to plain Go types for marshaling.
func toGoValue(v any) any {
	switch c := v.(type) {
	case *object:
		m := make(map[string]any, len(c.keys))
		for _, k := range c.keys {
			m[k] = toGoValue(c.vals[k])
		}
		return m
	case []any:
		out := make([]any, len(c))
		for i, e := range c {
			out[i] = toGoValue(e)
		}
		return out
	default:
		return v
	}
}
