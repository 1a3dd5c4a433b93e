// internal/report/summary.go
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/sortbench/internal/bench"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	summaryCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1)
)

// Summary renders the measurement rows as a styled terminal table, in row
// order.
func Summary(rows []bench.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHeaderStyle.Padding(0, 1)
			}
			return summaryCellStyle
		}).
		Headers("PATTERN", "N", "ALGORITHM", "MIN TIME")

	for _, r := range rows {
		t.Row(r.Pattern.String(), fmt.Sprintf("%d", r.Size), r.Algorithm, r.Duration.String())
	}

	return t.Render() + "\n"
}

// SummaryCounts reports how many measurement rows each pattern produced,
// a quick sanity line for the end of a run.
func SummaryCounts(rows []bench.Row) string {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		key := r.Pattern.String()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	var parts []string
	for _, key := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", key, counts[key]))
	}
	return strings.Join(parts, " ")
}
