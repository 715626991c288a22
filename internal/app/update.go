// internal/app/update.go
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/icons"
	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/ui/action"
	"github.com/llehouerou/snackbar/internal/ui/snackbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case snackbar.EventMsg:
		return m.handleBarEvent(msg)

	case snackbar.DismissMsg:
		return m.handleBarDismiss(msg)

	case snackbar.ActionInvokedMsg:
		return m.handleActionInvoked(msg)

	case spinner.TickMsg:
		return m.forwardToBars(msg)

	case action.Msg:
		return m.handleUIAction(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case StderrMsg:
		return m.handleStderrLine(msg)
	}

	return m, nil
}

// handleWindowSize propagates the new terminal size to every component.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.MainBar.SetSize(msg.Width, msg.Height)
	m.ModalBar.SetSize(msg.Width, msg.Height)
	m.Popups.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleBarEvent records and mirrors a controller change, then lets both
// bars sync. Each bar ignores events from the other's controller.
func (m Model) handleBarEvent(msg snackbar.EventMsg) (tea.Model, tea.Cmd) {
	m.recordEvent(msg)
	m.mirrorEvent(msg)
	return m.forwardToBars(msg)
}

// handleBarDismiss attributes an elapsed auto-dismiss timer to the item it
// was armed for, then lets the owning bar hide it. The history mark happens
// only when the timer still matches a visible item; a timer that outlived
// its item is attributed to whatever dismissed the item first.
func (m Model) handleBarDismiss(msg snackbar.DismissMsg) (tea.Model, tea.Cmd) {
	if item, ok := m.MainBar.Item(); ok && item.ID == msg.ID {
		m.markDismissed(item.ID, history.ReasonExpired)
	} else if item, ok := m.ModalBar.Item(); ok && item.ID == msg.ID {
		m.markDismissed(item.ID, history.ReasonExpired)
	}
	return m.forwardToBars(msg)
}

// handleActionInvoked closes the history entry for an item whose action ran.
// The undo demo gets a visible follow-up so the action has an effect to see.
func (m Model) handleActionInvoked(msg snackbar.ActionInvokedMsg) (tea.Model, tea.Cmd) {
	m.markDismissed(msg.Item.ID, history.ReasonAction)
	if msg.Item.Action != nil && msg.Item.Action.Label == "Undo" {
		m.targetLayer().Show("Message restored", m.Config.DefaultDuration(), notification.Options{})
	}
	return m, nil
}

// handleConfigReloaded applies a configuration picked up by the file watcher.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	m.Config = msg.Config
	icons.Init(msg.Config.IconStyle())
	m.MainBar.SetMaxWidth(msg.Config.Notifications.MaxWidth)
	m.ModalBar.SetMaxWidth(msg.Config.Notifications.MaxWidth)
	m.Layers.Main.Show("Configuration reloaded", m.Config.DefaultDuration(), notification.Options{})
	return m, WatchConfig(m.Watcher)
}

// handleStderrLine surfaces a stray stderr line as a sticky notification.
func (m Model) handleStderrLine(msg StderrMsg) (tea.Model, tea.Cmd) {
	m.Layers.Main.Show(msg.Line, 0, notification.Options{ShowCloseButton: true})
	return m, WatchStderr()
}

// forwardToBars relays a message to both bar surfaces and batches their
// commands.
func (m Model) forwardToBars(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.MainBar, cmd = m.MainBar.Update(msg)
	cmds = append(cmds, cmd)
	m.ModalBar, cmd = m.ModalBar.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// targetLayer returns the controller new notifications should go to: the
// modal layer while the sheet is up, the main layer otherwise.
func (m Model) targetLayer() *notification.Controller {
	if m.SheetOpen {
		return m.Layers.Modal
	}
	return m.Layers.Main
}

// layerName labels a controller for history rows.
func (m Model) layerName(ctrl *notification.Controller) string {
	if ctrl == m.Layers.Modal {
		return notification.LayerModal
	}
	return notification.LayerMain
}

// recordEvent writes a shown item to the history store. Failures are logged
// rather than shown: surfacing them as notifications would feed new events
// straight back into this path.
func (m Model) recordEvent(msg snackbar.EventMsg) {
	if m.History == nil || msg.Event.Kind != notification.EventShown {
		return
	}
	layer := m.layerName(msg.From)
	if err := m.History.Record(layer, msg.Event.Item); err != nil {
		slog.Warn("history record failed", "layer", layer, "error", err)
	}
}

// mirrorEvent forwards main-layer changes to the desktop notification
// daemon. The modal layer is an in-app stacking concern and stays local.
func (m Model) mirrorEvent(msg snackbar.EventMsg) {
	if m.Mirror == nil || msg.From != m.Layers.Main {
		return
	}
	var err error
	switch msg.Event.Kind {
	case notification.EventShown:
		err = m.Mirror.Show(msg.Event.Item)
	case notification.EventCleared:
		err = m.Mirror.Dismiss()
	}
	if err != nil {
		slog.Warn("desktop mirror failed", "error", err)
	}
}

// markDismissed closes the history row for id. Safe to call when history is
// disabled or the row is already closed.
func (m Model) markDismissed(id string, reason history.Reason) {
	if m.History == nil || id == "" {
		return
	}
	if err := m.History.MarkDismissed(id, reason); err != nil {
		slog.Warn("history mark failed", "id", id, "reason", reason, "error", err)
	}
}
