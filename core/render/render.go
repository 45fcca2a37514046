package render

import (
	"encoding/json"
	"os"
	"strings"

	"sentinel/core/reconcile"
	"sentinel/core/state"
	"sentinel/core/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	reportTitle  = "Sentinel Drift Report"
	absentCell   = "-"
	maxCellWidth = 48

	envCI   = "CI"
	envTerm = "TERM"
)

var headers = []string{"Path", "Kind", "Expected", "Actual"}

// Renderer turns a drift report into console output.
type Renderer interface {
	Render(report reconcile.Report) string
}

// New returns the renderer suited to the current terminal: a styled
// table on capable TTYs, flat log-friendly lines otherwise. plain forces
// the flat form.
func New(plain bool) Renderer {
	if styledTerminal(plain) {
		lipgloss.SetColorProfile(termenv.ColorProfile())
		return &TableRenderer{}
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	return &PlainRenderer{}
}

func styledTerminal(plain bool) bool {
	if plain {
		return false
	}
	if envTruthy(envCI) {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envTerm)), "dumb") {
		return false
	}
	return stdoutIsTerminal()
}

func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func envTruthy(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// valueCell renders one side of a drift. Scalars show their literal
// text, subtrees collapse to compact JSON, an absent side shows "-".
func valueCell(node *state.Node) string {
	if node == nil {
		return absentCell
	}
	if node.Kind == state.KindScalar {
		return utils.Truncate(node.Scalar.Text, maxCellWidth)
	}
	data, err := json.Marshal(node)
	if err != nil {
		return node.Kind.String()
	}
	return utils.Truncate(string(data), maxCellWidth)
}

func driftRows(report reconcile.Report) [][]string {
	rows := make([][]string, 0, len(report.Drifts))
	for _, d := range report.Drifts {
		rows = append(rows, []string{
			d.Path.String(),
			string(d.Kind),
			valueCell(d.Expected),
			valueCell(d.Actual),
		})
	}
	return rows
}
