package history

import (
	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/ui/action"
)

// Close signals the history popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "history.close" }

// ShowAgain requests re-showing a past notification.
type ShowAgain struct {
	Entry history.Entry
}

// ActionType implements action.Action.
func (a ShowAgain) ActionType() string { return "history.show_again" }

// Delete requests removing a single entry.
type Delete struct {
	Entry history.Entry
}

// ActionType implements action.Action.
func (a Delete) ActionType() string { return "history.delete" }

// ClearRequested asks the app to confirm clearing all history.
type ClearRequested struct{}

// ActionType implements action.Action.
func (a ClearRequested) ActionType() string { return "history.clear_requested" }

// ActionMsg creates an action.Msg for a history action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "history", Action: a}
}
