package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the scenario table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Scenario", Width: 44},
		{Title: "Status", Width: 10},
		{Title: "Elapsed", Width: 10},
		{Title: "Feature", Width: 28},
	}
}

// columnsForWidth scales the scenario column with the terminal width.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	remaining := width - columns[1].Width - columns[2].Width - columns[3].Width - 8
	if remaining > columns[0].Width {
		columns[0].Width = remaining
	}
	return columns
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			row.Name,
			row.Status,
			formatRowDuration(row, now),
			shortURI(row.URI),
		})
	}
	return rows
}
