package dashboard

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	panelBorder     = lipgloss.Color("#2D6A80")
	accentPrimary   = lipgloss.Color("#50E3C2")
	accentSecondary = lipgloss.Color("#F6AE2D")
	mutedText       = lipgloss.Color("#8CA1AE")
	warningText     = lipgloss.Color("#FF6B6B")
)

var (
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(accentPrimary)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(warningText).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#05090C")).
			Background(accentSecondary)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(accentPrimary).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(panelBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedText)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedText)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(panelBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#05090C")).
		Background(accentPrimary).
		Bold(false)
	return s
}

// renderPanel frames body with a title. Focused panels get the accent border.
func renderPanel(title, body string, width int, focused bool) string {
	borderColor := panelBorder
	if focused {
		borderColor = accentSecondary
	}
	style := panelStyle.
		BorderForeground(borderColor).
		Width(width)
	return style.Render(panelTitleStyle.Render(title) + "\n" + body)
}
