package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}

// renderTable draws rows under headers. Short rows are padded so every row
// has a cell per header. The table is narrowed to the terminal when it would
// not fit.
func renderTable(headers []string, rows [][]string) string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) < len(headers) {
			row = append(append([]string{}, row...), make([]string, len(headers)-len(row))...)
		}
		padded[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(padded...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	out := t.String()
	if w := terminalWidth(); w > 0 && lipgloss.Width(out) > w {
		out = t.Width(w).String()
	}
	return out
}
