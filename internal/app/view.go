package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/ui/render"
	"github.com/llehouerou/snackbar/internal/ui/styles"
)

// View renders the application UI: host content, then the overlay stack in
// z-order (main bar, popups, modal bar on top of everything).
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.renderHost()

	// The main bar belongs to the base layer; an open sheet covers it.
	if !m.SheetOpen {
		view = m.MainBar.Overlay(view)
	}

	view = m.Popups.RenderOverlay(view)
	view = m.ModalBar.Overlay(view)

	return view
}

// renderHost draws the playground screen the bars float above.
func (m Model) renderHost() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	body := m.renderBody(m.Height - 2)
	return header + "\n" + body + "\n" + footer
}

func (m Model) renderHeader() string {
	t := styles.T()
	title := styles.GradientTitle("snackbar", t.Primary, t.Secondary)
	hint := t.S().Subtle.Render("transient notification playground")
	return render.Row(title, hint, m.Width)
}

func (m Model) renderFooter() string {
	hints := "s show  S sticky  p progress  a action  e error  t compose  m sheet  h history  ? help  q quit"
	return styles.T().S().Subtle.Render(render.Truncate(hints, m.Width))
}

// renderBody fills height lines, centering the explainer block.
func (m Model) renderBody(height int) string {
	if height < 1 {
		return ""
	}

	s := styles.T().S()
	block := []string{
		s.Title.Render("Notification playground"),
		"",
		s.Muted.Render("Notifications replace each other: showing a new one"),
		s.Muted.Render("preempts whatever the layer currently displays."),
		"",
		m.layerStatus(notification.LayerMain, m.Layers.Main),
		m.layerStatus(notification.LayerModal, m.Layers.Modal),
	}

	lines := make([]string, height)
	start := max(0, (height-len(block))/2)
	for i := range lines {
		idx := i - start
		if idx >= 0 && idx < len(block) {
			lines[i] = centerLine(block[idx], m.Width)
		} else {
			lines[i] = render.EmptyLine(m.Width)
		}
	}
	return strings.Join(lines, "\n")
}

// layerStatus is one status line: the layer name and what its controller
// currently shows.
func (m Model) layerStatus(name string, ctrl *notification.Controller) string {
	s := styles.T().S()
	label := s.Accent.Render(name)
	if item, ok := ctrl.Current(); ok {
		return label + s.Base.Render(": "+render.Truncate(item.Text, max(0, m.Width/2)))
	}
	return label + s.Subtle.Render(": idle")
}

func centerLine(line string, width int) string {
	pad := max(0, (width-lipgloss.Width(line))/2)
	return render.Pad(strings.Repeat(" ", pad)+line, width)
}
