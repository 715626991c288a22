package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/config"
	"github.com/llehouerou/snackbar/internal/stderr"
)

// WatchStderr returns a command that waits for stderr output captured from
// libraries printing behind the TUI's back.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil // Channel closed
		}
		return StderrMsg{Line: line}
	}
}

// WatchConfig returns a command that waits for the next config reload from
// the file watcher. Returns nil when the watcher is absent or stopped.
func WatchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
