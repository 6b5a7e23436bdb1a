// internal/output/table.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"fastacheck-core/report"
	"fastacheck/internal/summary"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// RenderDiagnostics draws a bordered Error_type/Message table.
func RenderDiagnostics(diags []report.Diagnostic) string {
	t := newTable("Error_type", "Message")
	for _, d := range diags {
		t.Row(string(d.Category), d.Message)
	}
	return t.String()
}

// WriteDiagnostics writes the table followed by a newline. Nothing is
// written for an empty list.
func WriteDiagnostics(w io.Writer, diags []report.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, RenderDiagnostics(diags))
	return err
}

// WriteSummary renders run statistics as a two-column table.
func WriteSummary(w io.Writer, s summary.Stats) error {
	t := newTable("Metric", "Value").
		Row("records", strconv.Itoa(s.Records)).
		Row("total_bases", strconv.Itoa(s.TotalBases)).
		Row("min_length", strconv.Itoa(s.MinLength)).
		Row("max_length", strconv.Itoa(s.MaxLength)).
		Row("mean_length", strconv.FormatFloat(s.Mean, 'f', 2, 64)).
		Row("stddev_length", strconv.FormatFloat(s.StdDev, 'f', 2, 64)).
		Row("n50", strconv.Itoa(s.N50)).
		Row("ambiguous", fmt.Sprintf("%d (%.2f%%)", s.Ambiguous, 100*s.AmbiguousFraction()))
	_, err := fmt.Fprintln(w, t.String())
	return err
}
