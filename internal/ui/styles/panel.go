package styles

import "github.com/charmbracelet/lipgloss"

var (
	panelIdle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.Border)

	panelFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.BorderFocus)
)

// PanelStyle returns the rounded-border box that wraps a bar or panel.
// Focus only changes the border color.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return panelFocused
	}
	return panelIdle
}
