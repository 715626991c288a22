// Package history provides the notification history popup.
package history

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/ui"
	"github.com/llehouerou/snackbar/internal/ui/list"
	"github.com/llehouerou/snackbar/internal/ui/popup"
	"github.com/llehouerou/snackbar/internal/ui/render"
	"github.com/llehouerou/snackbar/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// timeWidth is the column width for relative timestamps ("2 minutes ago").
const timeWidth = 16

// reasonWidth is the column width for the dismiss reason.
const reasonWidth = 8

// chromeLines is the number of lines unavailable for entry rows: the
// title and footer drawn here plus the border and padding the manager
// draws around the content.
const chromeLines = 8

// chromeCols is the number of columns the manager's border and padding
// take from the width given to SetSize.
const chromeCols = 6

// Model holds the state for the history popup.
type Model struct {
	ui.Base
	list list.Model[history.Entry]
}

// New creates a new history popup model.
func New() Model {
	l := list.New[history.Entry](2)
	l.SetFocused(true)
	return Model{list: l}
}

// SetEntries replaces the displayed entries, newest first.
func (m *Model) SetEntries(entries []history.Entry) {
	m.list.SetItems(entries)
}

// Entries returns the displayed entries.
func (m Model) Entries() []history.Entry {
	return m.list.Items()
}

// SetSize implements popup.Popup. The inner list is sized so its
// navigation height matches the rows the popup actually renders.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, m.rowCount()+ui.PanelOverhead)
}

func (m Model) rowCount() int {
	return max(m.Height()-chromeLines, 3)
}

func (m Model) contentWidth() int {
	return max(m.Width()-chromeCols, 2*ui.MinBarWidth)
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
	case "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "D":
		if m.list.Len() > 0 {
			return m, func() tea.Msg { return ActionMsg(ClearRequested{}) }
		}
		return m, nil
	}

	result := m.list.Update(keyMsg)
	switch result.Action {
	case list.ActionEnter:
		if entry, ok := m.list.Selected(); ok {
			return m, func() tea.Msg { return ActionMsg(ShowAgain{Entry: entry}) }
		}
	case list.ActionDelete:
		if entry, ok := m.list.Selected(); ok {
			return m, func() tea.Msg { return ActionMsg(Delete{Entry: entry}) }
		}
	case list.ActionNone:
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(styles.T().S().Title.Render(m.title()))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows(width))
	b.WriteString("\n\n")
	b.WriteString(styles.T().S().Subtle.Render(m.footer()))
	return b.String()
}

func (m Model) title() string {
	if m.list.Len() == 0 {
		return "History"
	}
	return fmt.Sprintf("History (%d)", m.list.Len())
}

func (m Model) footer() string {
	if m.list.Len() == 0 {
		return "esc close"
	}
	return "enter show again · d delete · D clear · esc close"
}

func (m Model) renderRows(width int) string {
	rows := m.rowCount()
	if m.list.Len() == 0 {
		return m.renderEmptyState(width, rows)
	}

	start, end := m.list.VisibleRange(ui.PanelOverhead)
	entries := m.list.Items()

	lines := make([]string, 0, rows)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(&entries[i], i, width))
	}
	for len(lines) < rows {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

// renderEmptyState renders the empty history view.
func (m Model) renderEmptyState(width, rows int) string {
	centerLine := rows / 2
	lines := make([]string, rows)
	for i := range lines {
		if i == centerLine {
			centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render("No notifications yet")
			lines[i] = styles.T().S().Muted.Italic(true).Render(centered)
		} else {
			lines[i] = render.EmptyLine(width)
		}
	}
	return strings.Join(lines, "\n")
}

// renderRow renders a single history entry.
func (m Model) renderRow(e *history.Entry, idx, width int) string {
	isCursor := idx == m.list.SelectedIndex()

	prefix := "  "
	if isCursor {
		prefix = "> "
	}

	when := render.TruncateAndPad(humanize.Time(e.ShownAt), timeWidth)
	reason := render.TruncateAndPad(string(e.Reason), reasonWidth)

	text := e.Text
	if e.ActionLabel != "" {
		text += " [" + e.ActionLabel + "]"
	}
	textWidth := width - len(prefix) - timeWidth - reasonWidth - 2
	text = render.TruncateAndPad(render.Sanitize(text), textWidth)

	if isCursor {
		return styles.T().S().Cursor.Render(prefix + when + " " + text + " " + reason)
	}
	return styles.T().S().Base.Render(prefix+when+" "+text+" ") + m.reasonStyle(e.Reason).Render(reason)
}

func (m Model) reasonStyle(r history.Reason) lipgloss.Style {
	switch r {
	case history.ReasonAction:
		return styles.T().S().Success
	case history.ReasonReplaced:
		return styles.T().S().Warning
	case history.ReasonExpired, history.ReasonClosed, history.ReasonCleared:
		return styles.T().S().Subtle
	}
	return styles.T().S().Subtle
}
