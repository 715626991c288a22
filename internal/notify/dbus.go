//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	methodNotify = "org.freedesktop.Notifications.Notify"
	methodClose  = "org.freedesktop.Notifications.CloseNotification"
)

// dbusNotifier talks to the desktop notification daemon on the session bus.
type dbusNotifier struct {
	conn    *dbus.Conn
	obj     dbus.BusObject
	appName string
}

// Connect dials the session bus and binds to the freedesktop notification
// service. Fails when no session bus is reachable.
func Connect(appName string) (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &dbusNotifier{
		conn:    conn,
		obj:     conn.Object(notifyDest, notifyPath),
		appName: appName,
	}, nil
}

// New is Connect with a no-op fallback: callers that can live without
// desktop notifications get a stub instead of an error.
func New(appName string) (Notifier, error) {
	n, err := Connect(appName)
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // degrade to a no-op notifier without D-Bus
	}
	return n, nil
}

// Notify lays n out over the eight positional arguments of the
// freedesktop Notify method and returns the ID the daemon assigned.
func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(d.appName),
	}

	call := d.obj.Call(methodNotify, 0,
		d.appName,    // app_name
		n.ReplacesID, // replaces_id
		n.Icon,       // app_icon
		n.Title,      // summary
		n.Body,       // body
		[]string{},   // actions, none over the wire
		hints,
		n.Timeout, // expire_timeout
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close retracts a notification by ID.
func (d *dbusNotifier) Close(id uint32) error {
	return d.obj.Call(methodClose, 0, id).Err
}

// stubNotifier swallows notifications when the bus is unreachable.
type stubNotifier struct{}

func (*stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (*stubNotifier) Close(uint32) error                  { return nil }
