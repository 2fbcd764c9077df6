package output

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: MeSH IDs, taxon IDs, run IDs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the completion checkmark (✔).
	ColorGreen = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (MeSH IDs, taxon names, run IDs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, counts, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}

// FormatRowCount renders the dimmed "(n rows)" suffix shown under tables.
func FormatRowCount(n int) string {
	return StyleDim.Render(fmt.Sprintf("(%d rows)", n))
}

// FormatIdentifier renders an identifier noun (MeSH ID, taxon ID) for
// summary lines.
func FormatIdentifier(kind, id string) string {
	return StyleDim.Render(kind+":") + StyleNoun.Render(id)
}

// Truncate shortens a cell value for table display, appending an ellipsis.
// Counts runes, not bytes, so multi-byte values are never split mid-rune.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 1 {
		return string(runes[:max])
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
