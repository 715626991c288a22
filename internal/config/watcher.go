package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration whenever one of the config files
// changes on disk and publishes the result on Changes.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan *Config
	done    chan struct{}
}

// Watch starts watching the directories containing the config files.
// Directories are watched rather than the files themselves so that editors
// which replace files on save keep triggering events.
func Watch() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, path := range getConfigPaths() {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			slog.Warn("failed to watch config directory", "dir", dir, "error", err)
		}
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.run(watched)
	return w, nil
}

// Changes returns the channel on which reloaded configurations arrive.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

func (w *Watcher) run(watched map[string]bool) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			slog.Debug("config file changed, reloading", "path", abs)
			cfg, err := Load()
			if err != nil {
				slog.Warn("failed to reload config", "error", err)
				continue
			}

			// Latest wins: drop an unread reload before publishing. The
			// send cannot block, this goroutine is the only producer.
			select {
			case <-w.changes:
			default:
			}
			w.changes <- cfg

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	if err := w.fsw.Close(); err != nil {
		slog.Warn("failed to close config watcher", "error", err)
	}
}
