// Package output provides terminal output utilities.
package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	dtable "github.com/gmrepo/cli/internal/table"
)

// maxCellWidth bounds cell content so wide fields (project descriptions,
// disease names) don't blow out the terminal.
const maxCellWidth = 60

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// RenderTable renders a data table as a styled terminal table with a
// dimmed row-count suffix.
func RenderTable(t *dtable.Table) string {
	return RenderTableStyled(t, DefaultTableStyle())
}

// RenderTableStyled renders a data table with the given style.
func RenderTableStyled(t *dtable.Table, style TableStyle) string {
	headers := make([]string, 0, len(t.Columns()))
	for _, c := range t.Columns() {
		headers = append(headers, strings.ToUpper(c))
	}

	tbl := table.New().
		Border(style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(style.BorderColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.HeaderStyle
			}
			return style.CellStyle
		})

	for _, row := range t.Strings() {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = Truncate(c, maxCellWidth)
		}
		tbl.Row(cells...)
	}

	return tbl.String() + "\n" + FormatRowCount(t.Len()) + "\n"
}
