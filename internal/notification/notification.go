// Package notification provides the state container behind the snackbar
// surface: items, the single-pending-item controller, and change events.
package notification

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultDuration is how long a notification stays visible when the caller
// has no better idea.
const DefaultDuration = 1500 * time.Millisecond

// Item is a single notification. Identity lives in ID alone: two items are
// the same notification iff their IDs match, even if every other field
// differs. A fresh ID forces the surface to treat the item as new (restart
// the enter transition and the dismiss timer).
type Item struct {
	ID              string
	Text            string
	Duration        time.Duration // <= 0 disables auto-dismiss
	ShowProgress    bool          // suppresses auto-dismiss regardless of Duration
	ShowCloseButton bool
	IsError         bool // error presentation: glyph, desktop urgency
	Action          *Action
}

// Action is an optional button on a notification. Invoke runs synchronously
// before the item is dismissed.
type Action struct {
	Label  string
	Invoke func()
}

// Options carries the optional presentation fields of Show. Text and
// duration are explicit parameters so a zero duration keeps its meaning
// (no auto-dismiss).
type Options struct {
	ShowProgress    bool
	ShowCloseButton bool
	IsError         bool
	Action          *Action
}

// Same reports whether other is the same notification by identity.
// The zero Item is never the same as anything, including itself.
func (i Item) Same(other Item) bool {
	return i.ID != "" && i.ID == other.ID
}

// AutoDismiss reports whether the surface should arm a dismiss timer for
// this item. Progress items wait for an explicit hide: an indeterminate
// operation must not disappear on a timer.
func (i Item) AutoDismiss() bool {
	return i.Duration > 0 && !i.ShowProgress
}

// newID returns a fresh ULID string.
func newID() string {
	return ulid.Make().String()
}
