// Package helpbindings is the help popup: every key binding, grouped by
// context, scrollable when the list outgrows the screen.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/snackbar/internal/keymap"
	"github.com/llehouerou/snackbar/internal/ui"
	"github.com/llehouerou/snackbar/internal/ui/popup"
	"github.com/llehouerou/snackbar/internal/ui/render"
	"github.com/llehouerou/snackbar/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// categories fixes both the display order and the labels of the binding
// contexts.
var categories = []struct {
	name  string
	label string
}{
	{"global", "Global"},
	{"notifications", "Notifications"},
	{"history", "History"},
}

func categoryLabel(ctx string) string {
	for _, c := range categories {
		if c.name == ctx {
			return c.label
		}
	}
	return ctx
}

// Model is the help popup state: the bindings to list and how far the list
// is scrolled.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	contexts     []string
	scrollOffset int
}

func New() Model { return Model{} }

// SetContexts picks which binding contexts the popup lists, in category
// order, and rewinds the scroll.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, c := range categories {
		if slices.Contains(contexts, c.name) {
			m.bindings = append(m.bindings, keymap.ByContext(c.name)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. The border comes from the popup manager.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()

	// Width comes from the full list, not the visible slice, so the box
	// does not change size while scrolling.
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	visible := m.visibleHeight()
	if visible <= 0 {
		visible = len(lines)
	}
	start := min(m.scrollOffset, len(lines))
	end := min(start+visible, len(lines))

	// Lines are already styled here, so pad by ANSI-aware width.
	window := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		if w := lipgloss.Width(line); w < maxWidth {
			line += strings.Repeat(" ", maxWidth-w)
		}
		window = append(window, line)
	}

	var b strings.Builder
	b.WriteString(styles.T().S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(window, "\n"))
	b.WriteString("\n\n")
	b.WriteString(styles.T().S().Subtle.Render(m.footer()))
	return b.String()
}

// contentLines renders every binding row plus the category headers.
func (m Model) contentLines() []string {
	s := styles.T().S()
	headerStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		if w := len(strings.Join(b.Keys, ", ")); w > keyWidth {
			keyWidth = w
		}
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			lines = append(lines,
				headerStyle.Render(categoryLabel(b.Context)),
				s.Subtle.Render(strings.Repeat("─", keyWidth+15)))
			context = b.Context
		}

		keys := strings.Join(b.Keys, ", ")
		lines = append(lines,
			s.Accent.Render(render.Pad(keys, keyWidth))+"  "+s.Base.Render(b.Description))
	}
	return lines
}

func (m Model) footer() string {
	if len(m.contentLines()) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight is the rows left for binding lines after the popup chrome
// (title, footer, border, padding).
func (m Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}
