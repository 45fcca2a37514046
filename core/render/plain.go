package render

import (
	"fmt"
	"strings"

	"sentinel/core/reconcile"
)

// PlainRenderer writes one aligned text row per drift with no styling,
// for logs, CI output and dumb terminals.
type PlainRenderer struct{}

// Render implements Renderer.
func (PlainRenderer) Render(report reconcile.Report) string {
	rows := driftRows(report)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			// Last column stays unpadded to avoid trailing spaces.
			if i == len(row)-1 {
				sb.WriteString(cell)
				continue
			}
			fmt.Fprintf(&sb, "%-*s  ", widths[i], cell)
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(reportTitle)
	sb.WriteByte('\n')
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}
