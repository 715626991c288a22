package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/ui/popup"
)

// PopupHarness drives a popup the way the program loop would: it feeds
// messages in, records every command the popup returns, and exposes the
// rendered view for assertions.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and starts collecting its commands,
// beginning with whatever Init returns.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the wrapped popup so tests can assert on its concrete type.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize forwards terminal dimensions to the popup.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// --- Input ---

// SendMsg routes msg through Update, keeping the returned popup and
// recording the command. All the key helpers below go through here.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey types a run of plain characters.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey presses a non-character key such as enter or escape.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

func (h *PopupHarness) SendUp() tea.Cmd {
	return h.SendSpecialKey(tea.KeyUp)
}

func (h *PopupHarness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

func (h *PopupHarness) SendTab() tea.Cmd {
	return h.SendSpecialKey(tea.KeyTab)
}

// --- Collected commands ---

// Commands returns every command recorded since construction or the last
// ClearCommands call.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil when none were issued.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands drops the recorded commands, usually right before the
// interaction a test actually cares about.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs cmd and returns the message it produces. Tests use it to
// unwrap the payload a popup hands back to the program loop.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ExecuteAndSend runs cmd and feeds the resulting message back into the
// popup, mimicking one round trip through the program loop.
func (h *PopupHarness) ExecuteAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil, nil
	}
	resultCmd := h.SendMsg(msg)
	return msg, resultCmd
}

// --- View assertions ---

// View renders the popup content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// ViewContains reports whether a single rendered line contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns a failure message when the rendered view does
// not contain substr, or "" when it does.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains is the inverse of AssertViewContains.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
