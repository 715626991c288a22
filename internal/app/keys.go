// internal/app/keys.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/app/handler"
	"github.com/llehouerou/snackbar/internal/app/popupctl"
	"github.com/llehouerou/snackbar/internal/errmsg"
	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/keymap"
	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/ui/snackbar"
)

// helpContexts are the binding groups listed in the help popup.
var helpContexts = []string{"global", "notifications", "history"}

// handleKeyMsg routes a key press down the visual stack: the modal bar
// draws above everything, then whatever popup is open, then the main bar,
// then the app's own bindings.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	_, cmd := handler.Chain(
		func() handler.Result { return m.handleModalBarKey(msg) },
		func() handler.Result { return m.handlePopupKey(msg) },
		func() handler.Result { return m.handleMainBarKey(msg) },
		func() handler.Result { return m.handleBindingKey(msg) },
	)
	return m, cmd
}

// handleModalBarKey lets the modal-layer bar take its keys. It renders on
// top of the sheet, so it gets them before any popup.
func (m *Model) handleModalBarKey(msg tea.KeyMsg) handler.Result {
	if !m.ModalBar.HandlesKey(msg.String()) {
		return handler.NotHandled
	}
	m.noteBarClose(m.ModalBar, msg.String())
	var cmd tea.Cmd
	m.ModalBar, cmd = m.ModalBar.Update(msg)
	return handler.Handled(cmd)
}

// handlePopupKey routes the key to the active popup. An open popup consumes
// every key that reaches it.
func (m *Model) handlePopupKey(msg tea.KeyMsg) handler.Result {
	handled, cmd := m.Popups.HandleKey(msg)
	if !handled {
		return handler.NotHandled
	}
	return handler.Handled(cmd)
}

// handleMainBarKey lets the main-layer bar take its keys. Hidden beneath an
// open sheet, the bar gets no input at all.
func (m *Model) handleMainBarKey(msg tea.KeyMsg) handler.Result {
	if m.SheetOpen || !m.MainBar.HandlesKey(msg.String()) {
		return handler.NotHandled
	}
	m.noteBarClose(m.MainBar, msg.String())
	var cmd tea.Cmd
	m.MainBar, cmd = m.MainBar.Update(msg)
	return handler.Handled(cmd)
}

// handleBindingKey resolves the key against the app bindings.
func (m *Model) handleBindingKey(msg tea.KeyMsg) handler.Result {
	act := m.Keys.Resolve(msg.String())
	if act == "" {
		return handler.NotHandled
	}
	return m.dispatchAction(act)
}

// noteBarClose closes the history row for the item a bar is about to
// dismiss via its close key. Captured before the bar hides the item.
func (m *Model) noteBarClose(bar snackbar.Model, key string) {
	if key != "esc" && key != "x" {
		return
	}
	if item, ok := bar.Item(); ok && item.ShowCloseButton {
		m.markDismissed(item.ID, history.ReasonClosed)
	}
}

// dispatchAction runs an app-level binding. Actions owned by the bars or
// the history popup fall through; they are in the keymap for help display
// and are consumed earlier in the chain when their owner is visible.
func (m *Model) dispatchAction(act keymap.Action) handler.Result {
	switch act {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)

	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp(helpContexts))

	case keymap.ActionCompose:
		return handler.Handled(m.Popups.ShowTextInput(popupctl.InputCompose, "Show notification", "", nil))

	case keymap.ActionHistory:
		return m.openHistory()

	case keymap.ActionModalSheet:
		return m.openModalSheet()

	case keymap.ActionShowSimple:
		m.demoSeq++
		m.targetLayer().Show(fmt.Sprintf("Message %d sent", m.demoSeq), m.Config.DefaultDuration(), notification.Options{})
		return handler.HandledNoCmd

	case keymap.ActionShowSticky:
		m.targetLayer().Show("Working offline", 0, notification.Options{ShowCloseButton: true})
		return handler.HandledNoCmd

	case keymap.ActionShowProgress:
		m.targetLayer().Show("Syncing mailbox...", m.Config.DefaultDuration(), notification.Options{
			ShowProgress:    true,
			ShowCloseButton: true,
		})
		return handler.HandledNoCmd

	case keymap.ActionShowWithAction:
		m.showUndoDemo()
		return handler.HandledNoCmd

	case keymap.ActionShowError:
		m.targetLayer().ShowError(errmsg.OpDesktopNotify, errors.New("session bus unavailable"))
		return handler.HandledNoCmd

	case keymap.ActionClear:
		m.clearCurrent()
		return handler.HandledNoCmd
	}

	return handler.NotHandled
}

// openHistory loads recent entries and raises the history popup.
func (m *Model) openHistory() handler.Result {
	if m.History == nil {
		m.targetLayer().Show("History is disabled", m.Config.DefaultDuration(), notification.Options{})
		return handler.HandledNoCmd
	}
	entries, err := m.History.Recent(m.Config.GetHistoryConfig().Keep)
	if err != nil {
		m.targetLayer().ShowError(errmsg.OpHistoryLoad, err)
		return handler.HandledNoCmd
	}
	return handler.Handled(m.Popups.ShowHistory(entries))
}

// openModalSheet raises the demo sheet. While it is up, notifications go to
// the modal layer so they stay visible above it.
func (m *Model) openModalSheet() handler.Result {
	if m.SheetOpen {
		return handler.HandledNoCmd
	}
	m.SheetOpen = true
	return handler.Handled(m.showSheet())
}

// showSheet opens (or re-opens) the sheet popup. The confirm popup closes
// itself on every selection, so sheet actions that keep the sheet open
// raise it again.
func (m *Model) showSheet() tea.Cmd {
	return m.Popups.ShowConfirmWithOptions(
		"Modal sheet",
		"Notifications raised here use the modal layer and render above this sheet.",
		[]string{"Show notification", "Show sticky", "Close sheet"},
		ModalSheetContext{},
	)
}

// showUndoDemo raises the action demo: a long-lived notification whose
// action runs synchronously before the bar dismisses it.
func (m *Model) showUndoDemo() {
	m.targetLayer().Show("Message deleted", 10*time.Second, notification.Options{
		ShowCloseButton: true,
		Action: &notification.Action{
			Label: "Undo",
			Invoke: func() {
				slog.Debug("undo action invoked")
			},
		},
	})
}

// clearCurrent hides whatever the target layer shows, attributing the
// dismissal to the explicit clear.
func (m *Model) clearCurrent() {
	ctrl := m.targetLayer()
	if item, ok := ctrl.Current(); ok {
		m.markDismissed(item.ID, history.ReasonCleared)
	}
	ctrl.Hide()
}
