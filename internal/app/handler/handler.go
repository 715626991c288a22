// Package handler coordinates key dispatch across stacked input consumers.
// Several parts of an overlay UI may want the same key at once (a
// notification bar with a close binding, the popup rendered beneath it,
// the app's own bindings); each consumer reports whether it took the key
// and the chain stops at the first taker.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is one consumer's verdict on a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled lets the key fall through to the next consumer.
var NotHandled = Result{}

// HandledNoCmd consumes the key without scheduling any follow-up work.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and schedules cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler is one consumer's attempt at the current key.
type Handler func() Result

// Chain tries each consumer in order and stops at the first one that takes
// the key. Order encodes the visual stack: a consumer drawn above another
// must come earlier so it can shadow the keys of what it covers.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
