package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResultConstructors(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled = true, want false")
	}
	if !HandledNoCmd.Handled {
		t.Error("HandledNoCmd.Handled = false, want true")
	}
	if HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd.Cmd should be nil")
	}

	cmd := func() tea.Msg { return "notify" }
	r := Handled(cmd)
	if !r.Handled {
		t.Error("Handled(cmd).Handled = false, want true")
	}
	if r.Cmd == nil {
		t.Error("Handled(cmd) should carry the command")
	}
	if Handled(nil).Cmd != nil {
		t.Error("Handled(nil).Cmd should be nil")
	}
}

func TestChainStopsAtFirstTaker(t *testing.T) {
	var calls []string
	bar := func() Result {
		calls = append(calls, "bar")
		return HandledNoCmd
	}
	popup := func() Result {
		calls = append(calls, "popup")
		return HandledNoCmd
	}

	handled, cmd := Chain(bar, popup)
	if !handled {
		t.Error("Chain should report the key as handled")
	}
	if cmd != nil {
		t.Error("Chain should return nil cmd for HandledNoCmd")
	}
	if len(calls) != 1 || calls[0] != "bar" {
		t.Errorf("calls = %v, want [bar]", calls)
	}
}

func TestChainFallsThrough(t *testing.T) {
	var calls []string
	want := func() tea.Msg { return "from popup" }
	bar := func() Result {
		calls = append(calls, "bar")
		return NotHandled
	}
	popup := func() Result {
		calls = append(calls, "popup")
		return Handled(want)
	}
	bindings := func() Result {
		calls = append(calls, "bindings")
		return HandledNoCmd
	}

	handled, cmd := Chain(bar, popup, bindings)
	if !handled {
		t.Error("Chain should report the key as handled")
	}
	if cmd == nil {
		t.Error("Chain should return the popup's command")
	}
	if len(calls) != 2 || calls[0] != "bar" || calls[1] != "popup" {
		t.Errorf("calls = %v, want [bar popup]", calls)
	}
}

func TestChainNoTaker(t *testing.T) {
	count := 0
	pass := func() Result {
		count++
		return NotHandled
	}

	handled, cmd := Chain(pass, pass, pass)
	if handled {
		t.Error("Chain should report the key as unhandled")
	}
	if cmd != nil {
		t.Error("Chain should return nil cmd when nothing takes the key")
	}
	if count != 3 {
		t.Errorf("every consumer should be tried, got %d calls", count)
	}
}

func TestChainEmpty(t *testing.T) {
	handled, cmd := Chain()
	if handled || cmd != nil {
		t.Error("empty Chain should return (false, nil)")
	}
}
