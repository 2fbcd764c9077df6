// Package output provides terminal output utilities for the gmrepo CLI.
package output

import "strings"

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatTable renders a styled terminal table.
	FormatTable OutputFormat = "table"

	// FormatJSON outputs records in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatCSV outputs rows in CSV format.
	FormatCSV OutputFormat = "csv"

	// FormatYAML outputs records in YAML format.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatCSV, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// Returns FormatTable if the string is empty or invalid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatTable
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "csv", "yaml"}
}

// ValidDocumentFormats returns valid formats for document-shaped results,
// which have no tabular rendering.
func ValidDocumentFormats() []string {
	return []string{"json", "yaml"}
}
