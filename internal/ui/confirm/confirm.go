// Package confirm is the decision popup: a plain yes/no question, or a
// short option sheet whose last entry always backs out.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/snackbar/internal/ui"
	"github.com/llehouerou/snackbar/internal/ui/popup"
	"github.com/llehouerou/snackbar/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary)
}

func messageStyle() lipgloss.Style  { return styles.T().S().Base }
func hintStyle() lipgloss.Style     { return styles.T().S().Subtle }
func optionStyle() lipgloss.Style   { return styles.T().S().Base }
func selectedStyle() lipgloss.Style { return styles.T().S().Accent }

// Model asks one question at a time. With no options it is a yes/no dialog;
// with options it renders a selectable list.
type Model struct {
	ui.Base
	title    string
	message  string
	context  any
	active   bool
	options  []string
	selected int
}

func New() Model { return Model{} }

// Show opens the dialog in yes/no mode.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.ShowWithOptions(title, message, nil, context, width, height)
}

// ShowWithOptions opens the dialog with a selectable option list. The last
// option is the back-out choice: picking it reports Confirmed false.
func (m *Model) ShowWithOptions(title, message string, options []string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
	m.options = options
	m.selected = 0
}

// Reset clears the question, keeping the recorded size.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active reports whether a question is on screen.
func (m Model) Active() bool { return m.active }

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if len(m.options) > 0 {
		return m, m.handleOptionKey(key)
	}
	return m, m.handleYesNoKey(key)
}

func (m *Model) handleYesNoKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter", "y", "Y":
		return m.finish(true, 0)
	case "esc", "n", "N":
		return m.finish(false, 0)
	}
	return nil
}

func (m *Model) handleOptionKey(key tea.KeyMsg) tea.Cmd {
	last := len(m.options) - 1
	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < last {
			m.selected++
		}
	case "enter":
		// The final option backs out, everything before it confirms.
		return m.finish(m.selected < last, m.selected)
	case "esc":
		return m.finish(false, last)
	}
	return nil
}

// finish deactivates the dialog and reports the outcome.
func (m *Model) finish(confirmed bool, selected int) tea.Cmd {
	m.active = false
	result := Result{Confirmed: confirmed, Context: m.context, SelectedOption: selected}
	return func() tea.Msg {
		return ActionMsg(result)
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle().Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(messageStyle().Render(m.message))
	b.WriteString("\n\n")

	if len(m.options) == 0 {
		b.WriteString(hintStyle().Render("Enter/Y: confirm, Esc/N: cancel"))
		return b.String()
	}

	for i, opt := range m.options {
		if i == m.selected {
			b.WriteString(selectedStyle().Render("> " + opt))
		} else {
			b.WriteString(optionStyle().Render("  " + opt))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle().Render("↑↓/jk navigate · enter select"))
	return b.String()
}
