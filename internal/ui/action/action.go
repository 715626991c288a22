// Package action is the message envelope popups use to report results back
// to the app model: a confirm answer, a picked history entry, composed text.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a popup result. ActionType names it for log lines.
type Action interface {
	ActionType() string
}

// Msg carries an Action through the bubbletea loop together with the name
// of the component that produced it.
type Msg struct {
	Source string // "history", "confirm", "textinput", ...
	Action Action
}

var _ tea.Msg = Msg{}
