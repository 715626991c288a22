package notify

import (
	"time"

	"github.com/llehouerou/snackbar/internal/notification"
)

// Mirror forwards bar items to the desktop notification daemon. Each item
// replaces the previous desktop notification, matching how show preempts
// the previous bar instead of queueing behind it.
type Mirror struct {
	notifier Notifier
	lastID   uint32
}

// NewMirror wraps a Notifier for item forwarding.
func NewMirror(n Notifier) *Mirror {
	return &Mirror{notifier: n}
}

// Show forwards item to the daemon. Items that never auto-dismiss are sent
// without an expiry so the daemon keeps them until Dismiss.
func (m *Mirror) Show(item notification.Item) error {
	timeout := int32(0) // never expire
	if item.AutoDismiss() {
		timeout = int32(item.Duration / time.Millisecond)
	}

	var body string
	if item.Action != nil {
		body = item.Action.Label + " available"
	}

	urgency := UrgencyNormal
	if item.IsError {
		urgency = UrgencyCritical
	}

	id, err := m.notifier.Notify(Notification{
		Title:      item.Text,
		Body:       body,
		Timeout:    timeout,
		ReplacesID: m.lastID,
		Urgency:    urgency,
	})
	if err != nil {
		return err
	}

	m.lastID = id
	return nil
}

// Dismiss closes the mirrored desktop notification, if any.
func (m *Mirror) Dismiss() error {
	if m.lastID == 0 {
		return nil
	}
	id := m.lastID
	m.lastID = 0
	return m.notifier.Close(id)
}
