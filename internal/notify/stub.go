//go:build !linux

package notify

import "errors"

// Desktop mirroring rides on the freedesktop D-Bus service, which only
// exists on Linux. Everywhere else Connect refuses and New degrades to
// a notifier that swallows everything.

type stubNotifier struct{}

func Connect(string) (Notifier, error) {
	return nil, errors.New("desktop notifications require a D-Bus session bus")
}

func New(string) (Notifier, error) {
	return &stubNotifier{}, nil
}

func (*stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (*stubNotifier) Close(uint32) error                  { return nil }
