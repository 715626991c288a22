package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "notifications", "history"
}

// Bindings contains all key bindings for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionCompose, []string{"t"}, "Show a notification with custom text", "global"},
	{ActionHistory, []string{"h"}, "Notification history", "global"},
	{ActionModalSheet, []string{"m"}, "Open modal sheet", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Notifications
	{ActionShowSimple, []string{"s"}, "Show a notification", "notifications"},
	{ActionShowSticky, []string{"S"}, "Show a sticky notification", "notifications"},
	{ActionShowProgress, []string{"p"}, "Show a progress notification", "notifications"},
	{ActionShowWithAction, []string{"a"}, "Show a notification with an action", "notifications"},
	{ActionShowError, []string{"e"}, "Show an error notification", "notifications"},
	{ActionRunAction, []string{"enter"}, "Run the notification action", "notifications"},
	{ActionDismiss, []string{"x", "esc"}, "Dismiss (when close button shown)", "notifications"},
	{ActionClear, []string{"X"}, "Clear current notification", "notifications"},

	// History popup
	{ActionMoveDown, []string{"j", "down"}, "Move down", "history"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "history"},
	{ActionJumpStart, []string{"g"}, "First entry", "history"},
	{ActionJumpEnd, []string{"G"}, "Last entry", "history"},
	{ActionSelect, []string{"enter"}, "Show entry again", "history"},
	{ActionDelete, []string{"d"}, "Delete entry", "history"},
	{ActionClearAll, []string{"D"}, "Clear history", "history"},
	{ActionClose, []string{"esc"}, "Close history", "history"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
