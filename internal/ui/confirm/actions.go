package confirm

import (
	"github.com/llehouerou/snackbar/internal/ui/action"
)

// Result is the dialog's answer. In option mode SelectedOption points into
// the option list; picking the final option reports Confirmed false.
type Result struct {
	Confirmed      bool
	Context        any // whatever Show was given, returned untouched
	SelectedOption int
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps a dialog action in the shared envelope.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
