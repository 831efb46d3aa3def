package live

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Run " + state.RunID
	if state.FeatureCount > 0 {
		line += " | Features: " + strconv.Itoa(state.FeatureCount)
	}
	if !state.StartedAt.IsZero() {
		line += " | Elapsed: " + now.Sub(state.StartedAt).Round(100*time.Millisecond).String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Running: " + strconv.Itoa(counts.Running) +
		" Passed: " + strconv.Itoa(counts.Passed) +
		" Failed: " + strconv.Itoa(counts.Failed)
	if state.Finished {
		line += " | Success: " + strconv.FormatFloat(state.Summary.SuccessPercent, 'f', 1, 64) + "%"
	}
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// formatRowDuration renders a scenario's elapsed or total duration.
func formatRowDuration(row ScenarioRow, now time.Time) string {
	if row.StartedAt.IsZero() {
		return ""
	}
	end := row.FinishedAt
	if end.IsZero() {
		end = now
	}
	if end.Before(row.StartedAt) {
		return ""
	}
	return end.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
}

// shortURI trims a feature path down to its file name.
func shortURI(uri string) string {
	if uri == "" {
		return ""
	}
	return filepath.Base(uri)
}
