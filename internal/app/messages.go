// Package app contains the top-level program model and its messages.
package app

import "github.com/llehouerou/snackbar/internal/config"

// ConfigReloadedMsg delivers a re-parsed configuration after the config
// file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// StderrMsg carries a line some library printed to stderr behind the TUI's
// back. Surfaced as a sticky notification so it is not lost.
type StderrMsg struct {
	Line string
}

// ModalSheetContext tags confirm results coming from the demo modal sheet.
type ModalSheetContext struct{}

// ClearHistoryContext tags the confirm result for clearing the history store.
type ClearHistoryContext struct{}
