// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/ui/confirm"
	"github.com/llehouerou/snackbar/internal/ui/helpbindings"
	historyui "github.com/llehouerou/snackbar/internal/ui/history"
	"github.com/llehouerou/snackbar/internal/ui/overlay"
	"github.com/llehouerou/snackbar/internal/ui/popup"
	"github.com/llehouerou/snackbar/internal/ui/textinput"
)

// Manager owns every modal popup: at most one per Type, with Priority
// deciding which one receives keys when several are open at once.
type Manager struct {
	popups    map[Type]popup.Popup
	sizes     map[Type]popup.SizeConfig
	inputMode InputMode
	width     int
	height    int
}

// New creates an empty manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			// History browses long lists, so it takes most of the screen.
			// Everything else sizes to its content.
			History: {WidthPct: 80, HeightPct: 70},
		},
	}
}

// SetSize records the screen dimensions and resizes any popup that is
// already open.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.sizes[t])
		pop.SetSize(w, h)
	}
}

// IsVisible reports whether the given popup type is open.
func (p *Manager) IsVisible(t Type) bool {
	if t == None {
		return false
	}
	// The text prompt only counts while it is collecting something.
	if t == TextInput && p.inputMode == InputNone {
		return false
	}
	return p.popups[t] != nil
}

// ActivePopup returns the open popup with the highest priority.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop as the popup for t, replacing any previous one.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(p.sizes[t])
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes the popup of the given type.
func (p *Manager) Hide(t Type) {
	if t == TextInput {
		p.inputMode = InputNone
	}
	delete(p.popups, t)
}

// contentSize converts a frame size config into the room the popup content
// gets. Content-sized popups receive the whole screen and shrink themselves.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		w := p.width * size.WidthPct / 100
		h := p.height * size.HeightPct / 100
		return w, h
	}
	return p.width, p.height
}

// --- Typed open helpers ---

// ShowHelp opens the key binding reference for the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm opens a yes/no prompt. context rides along into the Result.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowConfirmWithOptions opens a prompt with a custom option list instead
// of yes/no.
func (p *Manager) ShowConfirmWithOptions(title, message string, options []string, context any) tea.Cmd {
	c := confirm.New()
	c.ShowWithOptions(title, message, options, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowTextInput opens the one-line prompt, prefilled with value.
func (p *Manager) ShowTextInput(mode InputMode, title, value string, context any) tea.Cmd {
	p.inputMode = mode
	ti := textinput.New()
	ti.Start(title, value, context, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// ShowHistory opens the history browser over the given entries.
func (p *Manager) ShowHistory(entries []history.Entry) tea.Cmd {
	h := historyui.New()
	h.SetEntries(entries)
	return p.Show(History, &h)
}

// InputMode returns what the open text input popup is collecting. Read it
// before hiding the popup; Hide resets it.
func (p *Manager) InputMode() InputMode {
	return p.inputMode
}

// History returns the open history popup, or nil, for in-place updates
// after the store changes.
func (p *Manager) History() *historyui.Model {
	if pop := p.popups[History]; pop != nil {
		if h, ok := pop.(*historyui.Model); ok {
			return h
		}
	}
	return nil
}

// HandleKey gives the key to the active popup. An open popup consumes every
// key that reaches it, so handled is true whenever one is active.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	t := p.ActivePopup()
	if t == None {
		return false, nil
	}

	updated, cmd := p.popups[t].Update(msg)
	p.popups[t] = updated
	return true, cmd
}

// RenderOverlay composites every open popup over the base view, walking
// Priority back to front so the active popup paints on top.
func (p *Manager) RenderOverlay(base string) string {
	for i := len(Priority) - 1; i >= 0; i-- {
		t := Priority[i]
		if !p.IsVisible(t) {
			continue
		}

		rendered := popup.RenderBordered(p.popups[t].View(), p.width, p.height, p.sizes[t])
		base = overlay.Compose(base, rendered, p.width, p.height)
	}
	return base
}
