package tui

import "github.com/charmbracelet/lipgloss"

var (
	validColor   = lipgloss.Color("#22C55E")
	invalidColor = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	accentColor  = lipgloss.Color("#3B82F6")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(24)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor)

	disabledButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color("#D1D5DB")).
				Background(mutedColor)

	greetingStyle = lipgloss.NewStyle().Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(validColor)
	errorStyle    = lipgloss.NewStyle().Foreground(invalidColor)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
)

// borderFor colours the input border green once the number is complete.
func borderFor(valid bool) lipgloss.Style {
	if valid {
		return inputStyle.BorderForeground(validColor)
	}
	return inputStyle.BorderForeground(invalidColor)
}
