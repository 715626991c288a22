// Package notify bridges notifications to the desktop through the
// org.freedesktop.Notifications D-Bus service, so a bar shown in the
// TUI can also surface when the terminal is not focused.
package notify

import "fmt"

// Urgency is the freedesktop urgency hint. Error notifications are
// mirrored as critical, everything else as normal.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// ParseUrgency reads an urgency name as given on a command line.
// The empty string means normal.
func ParseUrgency(s string) (Urgency, error) {
	switch s {
	case "low":
		return UrgencyLow, nil
	case "normal", "":
		return UrgencyNormal, nil
	case "critical":
		return UrgencyCritical, nil
	}
	return 0, fmt.Errorf("invalid urgency %q (want low, normal or critical)", s)
}

// Notification is one message for the desktop daemon.
type Notification struct {
	Title      string  // summary line, the only required field
	Body       string  // optional detail, may carry basic markup
	Icon       string  // icon name or image path
	Timeout    int32   // expiry in ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32  // nonzero updates that notification in place
	Urgency    Urgency
}

// Notifier is the sending side of the bridge. The D-Bus client
// implements it; a stub stands in where there is no session bus.
type Notifier interface {
	// Notify delivers n and returns the ID the daemon assigned,
	// or 0 with a nil error when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close retracts a previously sent notification.
	Close(id uint32) error
}
