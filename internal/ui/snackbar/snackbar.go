// Package snackbar renders the pending item of a notification controller as
// a transient bar overlaid on host content. The surface owns the auto-dismiss
// timer: it arms a one-shot command when an item with a positive duration
// appears and tells the controller to hide that exact item when it fires.
package snackbar

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/ui"
	"github.com/llehouerou/snackbar/internal/ui/styles"
)

// EventMsg delivers a controller change to the surface that subscribed to it.
// From identifies the controller so that a program running several surfaces
// can route one surface's events past the others.
type EventMsg struct {
	From  *notification.Controller
	Event notification.Event
}

// DismissMsg fires when an armed auto-dismiss timer elapses. ID carries the
// item identity captured at arm time, so a timer armed for one item can
// never dismiss its successor.
type DismissMsg struct {
	ID string
}

// ActionInvokedMsg reports that the action of an item ran. The item has
// already been hidden when this message is emitted.
type ActionInvokedMsg struct {
	Item notification.Item
}

// Model is the snackbar surface bound to a single controller.
type Model struct {
	ui.Base

	ctrl   *notification.Controller
	events <-chan notification.Event

	item    notification.Item
	visible bool
	armedID string // identity of the item the pending dismiss timer was armed for

	maxWidth int
	spin     spinner.Model
}

// New creates a surface bound to ctrl and subscribes it to change events.
func New(ctrl *notification.Controller) Model {
	return Model{
		ctrl:   ctrl,
		events: ctrl.Subscribe(),
		spin:   newSpinner(),
	}
}

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(styles.T().Primary)
	return sp
}

// SetMaxWidth caps the rendered bar width. Zero means the bar spans the
// host width.
func (m *Model) SetMaxWidth(width int) {
	m.maxWidth = width
}

// Visible reports whether the surface currently shows an item.
func (m Model) Visible() bool {
	return m.visible
}

// Item returns the displayed item, if any.
func (m Model) Item() (notification.Item, bool) {
	return m.item, m.visible
}

// Init starts watching controller events.
func (m Model) Init() tea.Cmd {
	return watchEvents(m.ctrl, m.events)
}

// watchEvents waits for the next controller event and wraps it in an
// EventMsg. Returns nil once the controller is closed.
func watchEvents(ctrl *notification.Controller, ch <-chan notification.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return EventMsg{From: ctrl, Event: event}
	}
}

// DismissCmd schedules the one-shot auto-dismiss for item.
func DismissCmd(item notification.Item) tea.Cmd {
	id := item.ID
	return tea.Tick(item.Duration, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}

// Update handles messages for the surface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if msg.From != m.ctrl {
			return m, nil
		}
		return m.sync()

	case DismissMsg:
		if msg.ID != "" && msg.ID == m.armedID {
			m.ctrl.HideItem(m.item)
		}
		return m, nil

	case spinner.TickMsg:
		if m.visible && m.item.ShowProgress {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// sync re-reads the controller state. The event payload is deliberately not
// trusted: the channel send is lossy under backpressure, so the controller
// is the only source of truth.
func (m Model) sync() (Model, tea.Cmd) {
	rearm := watchEvents(m.ctrl, m.events)

	current, ok := m.ctrl.Current()
	if !ok {
		m.visible = false
		m.armedID = ""
		m.item = notification.Item{}
		return m, rearm
	}

	if m.visible && m.item.Same(current) {
		// Duplicate delivery for the item already on screen. The armed
		// timer stays valid.
		return m, rearm
	}

	// Idle to visible, or a replacement item: restart the enter transition
	// and arm a fresh timer for the new identity.
	m.item = current
	m.visible = true
	m.armedID = ""

	cmds := []tea.Cmd{rearm}
	if current.AutoDismiss() {
		m.armedID = current.ID
		cmds = append(cmds, DismissCmd(current))
	}
	if current.ShowProgress {
		m.spin = newSpinner()
		cmds = append(cmds, m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if m.item.Action == nil {
			return m, nil
		}
		item := m.item
		if item.Action.Invoke != nil {
			item.Action.Invoke()
		}
		m.ctrl.HideItem(item)
		m.visible = false
		m.armedID = ""
		return m, func() tea.Msg { return ActionInvokedMsg{Item: item} }

	case "esc", "x":
		if !m.item.ShowCloseButton {
			return m, nil
		}
		m.ctrl.HideItem(m.item)
		m.visible = false
		m.armedID = ""
		return m, nil
	}

	return m, nil
}

// HandlesKey reports whether the surface would consume key in its current
// state. Hosts use this to route keys to the bar before their own bindings.
func (m Model) HandlesKey(key string) bool {
	if !m.visible {
		return false
	}
	switch key {
	case "enter":
		return m.item.Action != nil
	case "esc", "x":
		return m.item.ShowCloseButton
	}
	return false
}
