// Package cmdutil provides shared helpers for CLI commands.
package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// WriteTable writes a data table to w in the requested format.
func WriteTable(w io.Writer, t *table.Table, format output.OutputFormat) error {
	switch format {
	case output.FormatTable:
		_, err := io.WriteString(w, output.RenderTable(t))
		return err
	case output.FormatJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling table: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case output.FormatCSV:
		return t.ToCSV(w)
	case output.FormatYAML:
		data, err := yaml.Marshal(t.Records())
		if err != nil {
			return fmt.Errorf("marshaling table: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return gerrors.Wrap(gerrors.ErrValidation,
			fmt.Sprintf("invalid output format %q, use one of %v", format, output.ValidFormats()))
	}
}

// WriteDocument writes a document-shaped result to w. Documents have no
// tabular rendering, so only json and yaml are accepted.
func WriteDocument(w io.Writer, doc map[string]any, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling document: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case output.FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling document: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return gerrors.Wrap(gerrors.ErrValidation,
			fmt.Sprintf("invalid output format %q for this result, use one of %v", format, output.ValidDocumentFormats()))
	}
}
