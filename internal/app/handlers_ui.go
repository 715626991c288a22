package app

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/app/popupctl"
	"github.com/llehouerou/snackbar/internal/errmsg"
	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/ui/action"
	"github.com/llehouerou/snackbar/internal/ui/confirm"
	"github.com/llehouerou/snackbar/internal/ui/helpbindings"
	historyui "github.com/llehouerou/snackbar/internal/ui/history"
	"github.com/llehouerou/snackbar/internal/ui/textinput"
)

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case "textinput":
		return m.handleTextInputAction(msg.Action)
	case "confirm":
		return m.handleConfirmAction(msg.Action)
	case "helpbindings":
		return m.handleHelpBindingsAction(msg.Action)
	case "history":
		return m.handleHistoryAction(msg.Action)
	}
	return m, nil
}

// handleTextInputAction finishes a text input flow.
func (m Model) handleTextInputAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(textinput.Result)
	if !ok {
		return m, nil
	}

	mode := m.Popups.InputMode()
	m.Popups.Hide(popupctl.TextInput)

	if result.Canceled {
		return m, nil
	}
	text := strings.TrimSpace(result.Text)
	if text == "" {
		return m, nil
	}

	if mode == popupctl.InputCompose {
		m.targetLayer().Show(text, m.Config.DefaultDuration(), notification.Options{ShowCloseButton: true})
	}
	return m, nil
}

// handleConfirmAction dispatches a confirm result by its context type.
func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(confirm.Result)
	if !ok {
		return m, nil
	}
	m.Popups.Hide(popupctl.Confirm)

	switch result.Context.(type) {
	case ModalSheetContext:
		return m.handleModalSheetResult(result)
	case ClearHistoryContext:
		return m.handleClearHistoryResult(result)
	}
	return m, nil
}

// handleModalSheetResult acts on a sheet selection. The sheet closes itself
// for every choice, so choices that demo a notification re-raise it.
func (m Model) handleModalSheetResult(result confirm.Result) (tea.Model, tea.Cmd) {
	if !result.Confirmed {
		return m.closeSheet()
	}

	switch result.SelectedOption {
	case 0:
		m.Layers.Modal.Show("Saved to drafts", m.Config.DefaultDuration(), notification.Options{})
	case 1:
		m.Layers.Modal.Show("Working offline", 0, notification.Options{ShowCloseButton: true})
	default:
		return m.closeSheet()
	}
	return m, m.showSheet()
}

// closeSheet tears the demo sheet down and clears whatever the modal layer
// still shows; the layer has nothing to float above anymore.
func (m Model) closeSheet() (tea.Model, tea.Cmd) {
	m.SheetOpen = false
	if item, ok := m.Layers.Modal.Current(); ok {
		m.markDismissed(item.ID, history.ReasonCleared)
	}
	m.Layers.Modal.Hide()
	return m, nil
}

// handleClearHistoryResult empties the history store once confirmed.
func (m Model) handleClearHistoryResult(result confirm.Result) (tea.Model, tea.Cmd) {
	if !result.Confirmed || m.History == nil {
		return m, nil
	}
	if err := m.History.Clear(); err != nil {
		m.targetLayer().ShowError(errmsg.OpHistoryClear, err)
		return m, nil
	}
	m.refreshHistoryPopup()
	m.targetLayer().Show("History cleared", m.Config.DefaultDuration(), notification.Options{})
	return m, nil
}

// handleHelpBindingsAction closes the help popup.
func (m Model) handleHelpBindingsAction(a action.Action) (tea.Model, tea.Cmd) {
	if _, ok := a.(helpbindings.Close); ok {
		m.Popups.Hide(popupctl.Help)
	}
	return m, nil
}

// handleHistoryAction reacts to the history popup.
func (m Model) handleHistoryAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case historyui.Close:
		m.Popups.Hide(popupctl.History)
		return m, nil

	case historyui.ShowAgain:
		m.Popups.Hide(popupctl.History)
		// Re-shown entries carry text only: the original action callback
		// is long gone and cannot be revived from a database row.
		m.targetLayer().Show(act.Entry.Text, m.Config.DefaultDuration(), notification.Options{})
		return m, nil

	case historyui.Delete:
		if m.History == nil {
			return m, nil
		}
		if err := m.History.Delete(act.Entry.ID); err != nil {
			m.targetLayer().ShowError(errmsg.OpHistoryDelete, err)
			return m, nil
		}
		m.refreshHistoryPopup()
		return m, nil

	case historyui.ClearRequested:
		cmd := m.Popups.ShowConfirm(
			"Clear history",
			"Remove all recorded notifications?",
			ClearHistoryContext{},
		)
		return m, cmd
	}
	return m, nil
}

// refreshHistoryPopup reloads the open history popup after a mutation.
// No-op when the popup is closed.
func (m Model) refreshHistoryPopup() {
	pop := m.Popups.History()
	if pop == nil || m.History == nil {
		return
	}
	entries, err := m.History.Recent(m.Config.GetHistoryConfig().Keep)
	if err != nil {
		slog.Warn("history reload failed", "error", err)
		return
	}
	pop.SetEntries(entries)
}
