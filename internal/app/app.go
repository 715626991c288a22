package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/app/popupctl"
	"github.com/llehouerou/snackbar/internal/config"
	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/keymap"
	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/notify"
	"github.com/llehouerou/snackbar/internal/ui/snackbar"
)

// Model is the root application model containing all state.
type Model struct {
	Layers   *notification.Layers
	MainBar  snackbar.Model
	ModalBar snackbar.Model
	Popups   *popupctl.Manager
	Keys     *keymap.Resolver
	Config   *config.Config
	Watcher  *config.Watcher // nil when the config file cannot be watched
	History  *history.Store  // nil when history is disabled
	Mirror   *notify.Mirror  // nil when desktop mirroring is off

	// SheetOpen tracks the demo modal sheet. While it is up the main bar
	// stays hidden beneath it and new notifications go to the modal layer.
	SheetOpen bool

	Width  int
	Height int

	demoSeq int // counter for the numbered demo notifications
}

// New creates the application model from configuration and the shared
// services built in main. store and mirror may be nil.
func New(cfg *config.Config, layers *notification.Layers, store *history.Store, mirror *notify.Mirror, watcher *config.Watcher) Model {
	mainBar := snackbar.New(layers.Main)
	modalBar := snackbar.New(layers.Modal)
	mainBar.SetMaxWidth(cfg.Notifications.MaxWidth)
	modalBar.SetMaxWidth(cfg.Notifications.MaxWidth)

	return Model{
		Layers:   layers,
		MainBar:  mainBar,
		ModalBar: modalBar,
		Popups:   popupctl.New(),
		Keys:     keymap.NewResolver(keymap.Bindings),
		Config:   cfg,
		Watcher:  watcher,
		History:  store,
		Mirror:   mirror,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.MainBar.Init(),
		m.ModalBar.Init(),
		WatchStderr(),
		WatchConfig(m.Watcher),
	)
}
