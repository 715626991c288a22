// Package textinput is the compose popup: a one-line prompt for typing the
// text of a notification to show.
package textinput

import (
	"strings"
	"unicode"
	"unicode/utf8"

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

// Model holds the prompt state between Start and the Result action.
type Model struct {
	ui.Base
	title   string
	text    string
	context any // handed back untouched in Result
}

func New() Model { return Model{} }

// Start opens the prompt with a title and optional prefilled text.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.title = title
	m.text = initialText
	m.context = context
	m.SetSize(width, height)
}

// Reset clears the prompt state.
func (m *Model) Reset() {
	m.title = ""
	m.text = ""
	m.context = nil
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements popup.Popup. Enter submits, escape cancels; both hand
// the context back so the app knows which flow the prompt belonged to.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc:
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Canceled: true, Context: ctx})
		}

	case tea.KeyEnter:
		text := m.text
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Text: text, Context: ctx})
		}

	case tea.KeyBackspace:
		if m.text != "" {
			_, size := utf8.DecodeLastRuneInString(m.text)
			m.text = m.text[:len(m.text)-size]
		}

	case tea.KeySpace:
		m.text += " "

	case tea.KeyRunes:
		// Covers pastes too, so filter rune by rune.
		m.text += strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) {
				return r
			}
			return -1
		}, string(key.Runes))
	}

	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()

	var b strings.Builder
	b.WriteString(titleStyle().Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(s.Base.Render("> " + m.text))
	b.WriteString("█")
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("Enter: confirm, Esc: cancel"))
	return b.String()
}
