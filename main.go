package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/app"
	"github.com/llehouerou/snackbar/internal/config"
	"github.com/llehouerou/snackbar/internal/errmsg"
	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/icons"
	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/notify"
	"github.com/llehouerou/snackbar/internal/stderr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	setupLogging(cfg.LogFile)
	icons.Init(cfg.IconStyle())

	// Capture fd 2 before the TUI takes the terminal; stray library output
	// is re-surfaced as notifications instead of corrupting the screen.
	if err := stderr.Start(); err != nil {
		slog.Warn("stderr capture unavailable", "error", err)
	}
	defer stderr.Stop()

	layers := notification.NewLayers()
	defer layers.Close()

	var store *history.Store
	if cfg.HistoryEnabled() {
		store, err = history.Open(cfg.GetHistoryConfig().Keep)
		if err != nil {
			stderr.Stop()
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpHistoryOpen, err))
			os.Exit(1)
		}
		defer store.Close()
	}

	var mirror *notify.Mirror
	if cfg.Desktop.Mirror {
		notifier, err := notify.New(cfg.DesktopAppName())
		if err != nil {
			slog.Warn("desktop notifier unavailable", "error", err)
		} else {
			mirror = notify.NewMirror(notifier)
		}
	}

	watcher, err := config.Watch()
	if err != nil {
		slog.Warn("config watch unavailable", "error", err)
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	m := app.New(cfg, layers, store, mirror, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		stderr.Stop()
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

// setupLogging sends slog output to the configured file, or nowhere. The
// terminal belongs to the TUI, so stderr is never an option here.
func setupLogging(path string) {
	var w io.Writer = io.Discard
	level := slog.LevelInfo

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			w = f
			level = slog.LevelDebug
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
