//go:build windows

// Package stderr provides a no-op implementation for Windows, where the
// fd 2 redirection trick is unavailable.
package stderr

import "os"

// Messages receives stderr lines captured while the program runs.
// Never written to on Windows.
var Messages = make(chan string, 100)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
