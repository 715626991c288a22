package notification

import (
	"sync"
	"time"

	"github.com/llehouerou/snackbar/internal/errmsg"
)

// EventKind indicates what changed in a controller.
type EventKind int

const (
	// EventShown indicates a new item became the pending item.
	EventShown EventKind = iota
	// EventCleared indicates the pending item was removed.
	EventCleared
)

// Event signals a change to a controller's pending item. Item is the item
// that was shown or removed. Subscribers should re-query Current rather
// than trust delivery: sends are non-blocking and may be dropped when a
// subscriber lags.
type Event struct {
	Kind EventKind
	Item Item
}

// Controller owns at most one pending notification item. Show always
// replaces the pending item, never appends: a new notification preempts
// the current one without running its dismiss side effects. Every actual
// mutation emits exactly one event; no-op hides emit nothing.
//
// A Controller is safe for concurrent use, though the expected usage is a
// single UI goroutine with subscriptions bridged into the event loop.
type Controller struct {
	mu          sync.Mutex
	pending     *Item
	subscribers []chan Event
	closed      bool
}

// NewController creates an empty controller.
func NewController() *Controller {
	return &Controller{}
}

// Show constructs an item with a fresh ID and the given fields, installs it
// as the sole pending item and returns it. Any previously pending item is
// discarded silently. Observers receive exactly one EventShown.
func (c *Controller) Show(text string, d time.Duration, opts Options) Item {
	item := Item{
		ID:              newID(),
		Text:            text,
		Duration:        d,
		ShowProgress:    opts.ShowProgress,
		ShowCloseButton: opts.ShowCloseButton,
		IsError:         opts.IsError,
		Action:          opts.Action,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = &item
	c.notify(Event{Kind: EventShown, Item: item})
	return item
}

// ShowError formats err for display and shows it as a sticky notification
// with a close button. No-op when err is nil.
func (c *Controller) ShowError(op errmsg.Op, err error) Item {
	if err == nil {
		return Item{}
	}
	return c.Show(errmsg.Format(op, err), 0, Options{ShowCloseButton: true, IsError: true})
}

// HideItem removes the pending item iff it is the same item by identity.
// A stale dismiss timer firing after a newer item replaced its target lands
// here and does nothing.
func (c *Controller) HideItem(item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || !c.pending.Same(item) {
		return
	}
	removed := *c.pending
	c.pending = nil
	c.notify(Event{Kind: EventCleared, Item: removed})
}

// Hide clears the pending item unconditionally.
func (c *Controller) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return
	}
	removed := *c.pending
	c.pending = nil
	c.notify(Event{Kind: EventCleared, Item: removed})
}

// Current returns the pending item, if any.
func (c *Controller) Current() (Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return Item{}, false
	}
	return *c.pending, true
}

// Subscribe returns a channel that receives change events. The channel is
// closed by Unsubscribe or Close. Subscribing to a closed controller
// returns an already-closed channel.
func (c *Controller) Subscribe() <-chan Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Event, 10)
	if c.closed {
		close(ch)
		return ch
	}
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (c *Controller) Unsubscribe(ch <-chan Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close closes all subscriber channels. The controller remains usable but
// no further events are delivered.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
}

// notify sends an event to all subscribers without blocking. Callers must
// hold mu.
func (c *Controller) notify(event Event) {
	for _, ch := range c.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber lagging, drop. State is re-queried on receipt.
		}
	}
}
