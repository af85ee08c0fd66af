// Package report renders summaries, histograms, and QQ scatters for the
// terminal, plus markdown study reports.
package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3"))

	cellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f2f2f2"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7a89"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4db6ac"))
)
