package render

import (
	"sentinel/core/reconcile"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette, one color per column, dark-terminal friendly.
var (
	cyan    = lipgloss.Color("86")
	magenta = lipgloss.Color("213")
	green   = lipgloss.Color("76")
	red     = lipgloss.Color("204")
	faint   = lipgloss.Color("238")
)

var columnColors = []lipgloss.Color{cyan, magenta, green, red}

// TableRenderer draws drifts as a bordered table for interactive
// terminals: path in cyan, kind in magenta, expected in green, actual
// in red.
type TableRenderer struct{}

// Render implements Renderer.
func (TableRenderer) Render(report reconcile.Report) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= 0 && col < len(columnColors) {
				return cellStyle.Foreground(columnColors[col])
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(driftRows(report)...)

	title := lipgloss.NewStyle().Bold(true).Render(reportTitle)
	return title + "\n" + t.String() + "\n"
}
