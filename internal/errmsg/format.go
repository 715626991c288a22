// Package errmsg turns internal failures into the short messages an
// error bar can show: "Failed to <operation>: <cause>".
package errmsg

import "fmt"

// Op names an operation in user vocabulary. It must read naturally
// after "Failed to".
type Op string

const (
	OpConfigLoad Op = "load configuration"

	OpHistoryOpen   Op = "open notification history"
	OpHistoryLoad   Op = "load notification history"
	OpHistoryDelete Op = "delete history entry"
	OpHistoryClear  Op = "clear notification history"

	OpDesktopNotify Op = "send desktop notification"

	OpInitialize Op = "initialize application"
)

// Format renders the failure of op as a one-line user message.
// A nil error formats to the empty string.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
