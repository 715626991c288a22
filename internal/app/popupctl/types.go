// Package popupctl owns the popup stack: which popup is active, how it is
// sized, and how its rendering overlays the host view.
package popupctl

// Type names one of the app's popups.
type Type int

const (
	None Type = iota
	Help
	Confirm
	TextInput
	History
)

// Priority orders the popups front to back. Keys go to the first open
// entry; rendering walks the list in reverse so that popup paints last.
var Priority = []Type{
	Help,
	Confirm,
	TextInput,
	History,
}

// InputMode says what the text prompt is collecting.
type InputMode int

const (
	InputNone    InputMode = iota
	InputCompose // text of a notification to show
)
