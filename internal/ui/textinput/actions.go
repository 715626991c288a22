package textinput

import (
	"github.com/llehouerou/snackbar/internal/ui/action"
)

// Result is what the prompt hands back: the typed text, or Canceled when
// the user backed out with escape.
type Result struct {
	Text     string
	Context  any // whatever Start was given, returned untouched
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "textinput.result" }

// ActionMsg wraps a prompt action in the shared envelope.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
