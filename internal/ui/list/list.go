// Package list is a scrollable selection list. It owns navigation and
// selection state only; the parent renders the rows it reports visible.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/ui"
	"github.com/llehouerou/snackbar/internal/ui/cursor"
)

// Action is what a key press asked the parent to do with the selection.
type Action int

const (
	ActionNone   Action = iota
	ActionEnter         // enter pressed on the selection
	ActionDelete        // d or delete pressed on the selection
)

// Result reports the outcome of one Update. Index is the item the action
// applies to, -1 when there is none.
type Result struct {
	Action Action
	Index  int
}

// Model holds the items and the cursor over them.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates a list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// SetItems replaces the items. The selection is pulled back into range when
// the new slice is shorter.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

func (m Model[T]) Items() []T { return m.items }

func (m Model[T]) Len() int { return len(m.items) }

// Selected returns the selected item, if there is one.
func (m Model[T]) Selected() (T, bool) {
	var zero T
	if i := m.cursor.Pos(); i < len(m.items) {
		return m.items[i], true
	}
	return zero, false
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int { return m.cursor.Pos() }

// VisibleRange returns the [start, end) item range the parent should render.
func (m Model[T]) VisibleRange(overhead int) (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight(overhead))
}

// Update moves the selection for navigation keys; enter and d come back
// as actions for the parent to carry out.
func (m *Model[T]) Update(key tea.KeyMsg) Result {
	none := Result{Index: -1}
	if !m.IsFocused() {
		return none
	}

	if m.cursor.HandleKey(key.String(), m.Len(), m.ListHeight(ui.PanelOverhead)) {
		return none
	}
	if m.Len() == 0 {
		return none
	}

	switch key.String() {
	case "enter":
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	case "d", "delete":
		return Result{Action: ActionDelete, Index: m.cursor.Pos()}
	}
	return none
}
