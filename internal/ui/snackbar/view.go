package snackbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/snackbar/internal/icons"
	"github.com/llehouerou/snackbar/internal/ui"
	"github.com/llehouerou/snackbar/internal/ui/overlay"
	"github.com/llehouerou/snackbar/internal/ui/render"
	"github.com/llehouerou/snackbar/internal/ui/styles"
)

const maxActionLabelWidth = 20

// View renders the bar, or an empty string while idle.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	width := m.barWidth()
	if width < ui.MinBarWidth {
		return ""
	}
	innerWidth := width - 2 // border columns

	s := styles.T().S()

	glyph := s.Success.Render(icons.Check())
	switch {
	case m.item.ShowProgress:
		glyph = m.spin.View()
	case m.item.IsError:
		glyph = s.Error.Render(icons.Cross())
	}

	var controls []string
	if m.item.Action != nil {
		label := render.Truncate(m.item.Action.Label, maxActionLabelWidth)
		controls = append(controls,
			s.Subtle.Render("[")+s.Accent.Render(label)+s.Subtle.Render("]"))
	}
	if m.item.ShowCloseButton {
		controls = append(controls, s.Muted.Render(icons.Close()))
	}
	right := strings.Join(controls, " ")

	textWidth := innerWidth - lipgloss.Width(glyph) - 1
	if right != "" {
		textWidth -= lipgloss.Width(right) + 1
	}
	if textWidth < 1 {
		textWidth = 1
	}
	// Item text can come from anywhere, including captured stderr lines,
	// so strip control bytes before it reaches the terminal.
	text := render.Truncate(render.Sanitize(m.item.Text), textWidth)
	left := glyph + " " + s.Base.Render(text)

	content := left
	if right != "" {
		content = render.Row(left, right, innerWidth)
	}

	return styles.PanelStyle(false).Width(innerWidth).Render(content)
}

// Overlay composites the bar over host content, bottom-anchored and
// horizontally centered. While idle the host is returned untouched.
func (m Model) Overlay(host string) string {
	bar := m.View()
	if bar == "" {
		return host
	}
	return overlay.ComposeBottom(host, bar, m.Width(), m.Height(), ui.BarMargin)
}

func (m Model) barWidth() int {
	width := m.Width() - 2
	if m.maxWidth > 0 && m.maxWidth < width {
		width = m.maxWidth
	}
	return width
}
