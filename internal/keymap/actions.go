// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionHelp       Action = "help"
	ActionCompose    Action = "compose"
	ActionHistory    Action = "history"
	ActionModalSheet Action = "modal_sheet"

	// Notification demo actions
	ActionShowSimple     Action = "show_simple"
	ActionShowSticky     Action = "show_sticky"
	ActionShowProgress   Action = "show_progress"
	ActionShowWithAction Action = "show_with_action"
	ActionShowError      Action = "show_error"

	// Notification bar actions (handled by the bar itself, listed for help)
	ActionRunAction Action = "run_action"
	ActionDismiss   Action = "dismiss"
	ActionClear     Action = "clear"

	// History popup actions (handled by the popup, listed for help)
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select"
	ActionDelete    Action = "delete"
	ActionClearAll  Action = "clear_all"
	ActionClose     Action = "close"
)
