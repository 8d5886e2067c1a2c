package chart

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// SummaryRows returns one row per fixture with a cell per version,
// "-" where the version has no result.
func SummaryRows(m *Matrix) (headers []string, rows [][]string) {
	versions := m.Versions()
	headers = append([]string{"Benchmark"}, versions...)
	for _, f := range m.Fixtures() {
		row := []string{f}
		for _, v := range versions {
			if ms, ok := m.Get(f, v); ok {
				row = append(row, fmt.Sprintf("%.1f", ms))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// SummaryTable renders the matrix as a bordered table in milliseconds.
func SummaryTable(m *Matrix) string {
	headers, rows := SummaryRows(m)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
