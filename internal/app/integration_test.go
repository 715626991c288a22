package app

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/snackbar/internal/app/popupctl"
	"github.com/llehouerou/snackbar/internal/config"
	"github.com/llehouerou/snackbar/internal/history"
	"github.com/llehouerou/snackbar/internal/notification"
	"github.com/llehouerou/snackbar/internal/ui/snackbar"
	"github.com/llehouerou/snackbar/internal/ui/testutil"
)

const (
	keyEnter  = "enter"
	keyEscape = "esc"
)

// newTestApp creates a sized model without history or mirroring.
func newTestApp(t *testing.T) Model {
	t.Helper()
	layers := notification.NewLayers()
	t.Cleanup(layers.Close)
	m := New(&config.Config{}, layers, nil, nil, nil)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// newTestAppWithHistory creates a sized model backed by a real store in a
// temp directory.
func newTestAppWithHistory(t *testing.T) Model {
	t.Helper()
	store, err := history.OpenPath(filepath.Join(t.TempDir(), "history.db"), 50)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	layers := notification.NewLayers()
	t.Cleanup(layers.Close)
	m := New(&config.Config{}, layers, store, nil, nil)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel runs one Update and asserts the model type survives.
func updateModel(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	newModel, _ := m.Update(msg)
	result, ok := newModel.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", newModel)
	}
	return result
}

// runCmd executes cmd and feeds the resulting message back into Update, the
// way the program loop would.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	return updateModel(t, m, msg)
}

// pumpShown replays the EventShown for the controller's pending item, the
// way a bar's watch command would deliver it.
func pumpShown(t *testing.T, m Model, ctrl *notification.Controller) Model {
	t.Helper()
	item, ok := ctrl.Current()
	if !ok {
		t.Fatal("controller has no pending item to deliver")
	}
	return updateModel(t, m, snackbar.EventMsg{
		From:  ctrl,
		Event: notification.Event{Kind: notification.EventShown, Item: item},
	})
}

// pumpCleared replays the EventCleared for item.
func pumpCleared(t *testing.T, m Model, ctrl *notification.Controller, item notification.Item) Model {
	t.Helper()
	return updateModel(t, m, snackbar.EventMsg{
		From:  ctrl,
		Event: notification.Event{Kind: notification.EventCleared, Item: item},
	})
}

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(key string) tea.Msg {
	switch key {
	case keyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	case keyEscape:
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestApp(t)
			_, cmd := m.Update(keyMsg(key))
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestShowKeyRaisesMainBar(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("s"))

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("main layer should have a pending item after 's'")
	}
	if item.Text != "Message 1 sent" {
		t.Errorf("Text = %q, want %q", item.Text, "Message 1 sent")
	}

	m = pumpShown(t, m, m.Layers.Main)
	if !m.MainBar.Visible() {
		t.Error("main bar should be visible after the shown event")
	}
	if msg := testutil.AssertContains(m.View(), "Message 1 sent"); msg != "" {
		t.Error(msg)
	}
}

func TestShowReplacesPending(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("s"))
	m = updateModel(t, m, keyMsg("s"))

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("main layer should have a pending item")
	}
	if item.Text != "Message 2 sent" {
		t.Errorf("Text = %q, want the replacement", item.Text)
	}

	// Clearing reveals nothing behind it: show replaced, never queued.
	m = updateModel(t, m, keyMsg("X"))
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("clear should leave the layer empty, not reveal a queued item")
	}
}

func TestStickyNotification(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("S"))

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("main layer should have a pending item after 'S'")
	}
	if item.Duration != 0 {
		t.Errorf("Duration = %v, want 0 for a sticky item", item.Duration)
	}
	if !item.ShowCloseButton {
		t.Error("sticky demo should carry a close button")
	}

	// The close key dismisses it.
	m = pumpShown(t, m, m.Layers.Main)
	m = updateModel(t, m, keyMsg("x"))
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("'x' should dismiss an item with a close button")
	}
}

func TestCloseKeyIgnoredWithoutCloseButton(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)

	m = updateModel(t, m, keyMsg("x"))
	if _, ok := m.Layers.Main.Current(); !ok {
		t.Error("'x' should not dismiss an item without a close button")
	}
}

func TestProgressNotification(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("p"))

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("main layer should have a pending item after 'p'")
	}
	if !item.ShowProgress {
		t.Error("progress demo should set ShowProgress")
	}
	if item.AutoDismiss() {
		t.Error("progress item must not auto-dismiss even with a duration")
	}
}

func TestErrorNotification(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("e"))

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("main layer should have a pending item after 'e'")
	}
	if !strings.Contains(item.Text, "Failed to send desktop notification") {
		t.Errorf("Text = %q, want a formatted failure", item.Text)
	}
	if item.Duration != 0 || !item.ShowCloseButton {
		t.Error("error notifications should be sticky with a close button")
	}
}

func TestDismissTimerHidesItem(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("s"))
	item, _ := m.Layers.Main.Current()
	m = pumpShown(t, m, m.Layers.Main)

	m = updateModel(t, m, snackbar.DismissMsg{ID: item.ID})
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("elapsed timer should hide its item")
	}

	m = pumpCleared(t, m, m.Layers.Main, item)
	if m.MainBar.Visible() {
		t.Error("main bar should hide after the cleared event")
	}
}

func TestStaleTimerDoesNotDismissSuccessor(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("s"))
	first, _ := m.Layers.Main.Current()
	m = pumpShown(t, m, m.Layers.Main)

	m = updateModel(t, m, keyMsg("s"))
	second, _ := m.Layers.Main.Current()

	// The timer armed for the first item fires after the replacement.
	m = updateModel(t, m, snackbar.DismissMsg{ID: first.ID})

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("successor should survive the stale timer")
	}
	if item.ID != second.ID {
		t.Errorf("pending item = %q, want the successor %q", item.Text, second.Text)
	}
}

func TestActionRunsExactlyOnce(t *testing.T) {
	m := newTestApp(t)

	invoked := 0
	m.Layers.Main.Show("Upload failed", 0, notification.Options{
		Action: &notification.Action{
			Label:  "Retry",
			Invoke: func() { invoked++ },
		},
	})
	m = pumpShown(t, m, m.Layers.Main)

	newModel, cmd := m.Update(keyMsg(keyEnter))
	m = newModel.(Model)
	if invoked != 1 {
		t.Fatalf("invoked = %d, want 1 after enter", invoked)
	}
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("item should be dismissed after its action ran")
	}

	m = runCmd(t, m, cmd)

	// A second enter hits an empty layer and does nothing.
	m = updateModel(t, m, keyMsg(keyEnter))
	if invoked != 1 {
		t.Errorf("invoked = %d, want still 1", invoked)
	}
}

func TestUndoDemoShowsFollowUp(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("a"))
	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("main layer should have a pending item after 'a'")
	}
	if item.Action == nil || item.Action.Label != "Undo" {
		t.Fatal("action demo should carry an Undo action")
	}

	m = pumpShown(t, m, m.Layers.Main)
	newModel, cmd := m.Update(keyMsg(keyEnter))
	m = runCmd(t, newModel.(Model), cmd)

	follow, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("undo should raise a follow-up notification")
	}
	if follow.Text != "Message restored" {
		t.Errorf("Text = %q, want %q", follow.Text, "Message restored")
	}
}

func TestLayerIsolation(t *testing.T) {
	m := newTestApp(t)

	m.Layers.Modal.Show("Saved to drafts", notification.DefaultDuration, notification.Options{})
	m = pumpShown(t, m, m.Layers.Modal)

	if !m.ModalBar.Visible() {
		t.Error("modal bar should show its layer's item")
	}
	if m.MainBar.Visible() {
		t.Error("main bar must ignore the modal layer")
	}
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("main layer should stay empty")
	}
}

func TestModalSheetFlow(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("m"))
	if !m.SheetOpen {
		t.Fatal("'m' should open the sheet")
	}
	if !m.Popups.IsVisible(popupctl.Confirm) {
		t.Fatal("sheet popup should be visible")
	}

	// Selecting the first option shows on the modal layer and keeps the
	// sheet open.
	newModel, cmd := m.Update(keyMsg(keyEnter))
	m = runCmd(t, newModel.(Model), cmd)

	item, ok := m.Layers.Modal.Current()
	if !ok {
		t.Fatal("sheet selection should show on the modal layer")
	}
	if item.Text != "Saved to drafts" {
		t.Errorf("Text = %q, want %q", item.Text, "Saved to drafts")
	}
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("main layer must stay empty while the sheet demos the modal layer")
	}
	if !m.SheetOpen || !m.Popups.IsVisible(popupctl.Confirm) {
		t.Error("sheet should stay open after a demo selection")
	}

	// Escape closes the sheet and clears the modal layer with it.
	newModel, cmd = m.Update(keyMsg(keyEscape))
	m = runCmd(t, newModel.(Model), cmd)

	if m.SheetOpen {
		t.Error("escape should close the sheet")
	}
	if _, ok := m.Layers.Modal.Current(); ok {
		t.Error("closing the sheet should clear the modal layer")
	}
}

func TestSheetHidesMainBar(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)
	if msg := testutil.AssertContains(m.View(), "✓"); msg != "" {
		t.Fatal(msg)
	}

	m = updateModel(t, m, keyMsg("m"))
	if msg := testutil.AssertNotContains(m.View(), "✓"); msg != "" {
		t.Error(msg)
	}
}

func TestComposeFlow(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("t"))
	if !m.Popups.IsVisible(popupctl.TextInput) {
		t.Fatal("'t' should open the compose popup")
	}
	if m.Popups.InputMode() != popupctl.InputCompose {
		t.Fatal("compose popup should set the compose input mode")
	}

	for _, r := range "hi" {
		m = updateModel(t, m, keyMsg(string(r)))
	}
	newModel, cmd := m.Update(keyMsg(keyEnter))
	m = runCmd(t, newModel.(Model), cmd)

	if m.Popups.IsVisible(popupctl.TextInput) {
		t.Error("compose popup should close after enter")
	}
	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("composed text should be shown")
	}
	if item.Text != "hi" {
		t.Errorf("Text = %q, want %q", item.Text, "hi")
	}
	if !item.ShowCloseButton {
		t.Error("composed notifications should carry a close button")
	}
}

func TestComposeCancelShowsNothing(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("t"))
	newModel, cmd := m.Update(keyMsg(keyEscape))
	m = runCmd(t, newModel.(Model), cmd)

	if m.Popups.IsVisible(popupctl.TextInput) {
		t.Error("escape should close the compose popup")
	}
	if _, ok := m.Layers.Main.Current(); ok {
		t.Error("a canceled compose must not show anything")
	}
}

func TestHelpPopup(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("?"))
	if !m.Popups.IsVisible(popupctl.Help) {
		t.Fatal("'?' should open the help popup")
	}

	newModel, cmd := m.Update(keyMsg(keyEscape))
	m = runCmd(t, newModel.(Model), cmd)
	if m.Popups.IsVisible(popupctl.Help) {
		t.Error("escape should close the help popup")
	}
}

func TestHistoryDisabledNotice(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, keyMsg("h"))

	if m.Popups.IsVisible(popupctl.History) {
		t.Error("history popup should not open without a store")
	}
	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("expected a notice on the main layer")
	}
	if item.Text != "History is disabled" {
		t.Errorf("Text = %q, want the disabled notice", item.Text)
	}
}

func TestHistoryPopupFlow(t *testing.T) {
	m := newTestAppWithHistory(t)

	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)
	m = updateModel(t, m, keyMsg("X"))

	m = updateModel(t, m, keyMsg("h"))
	if !m.Popups.IsVisible(popupctl.History) {
		t.Fatal("'h' should open the history popup")
	}
	pop := m.Popups.History()
	if pop == nil {
		t.Fatal("history popup accessor should return the model")
	}
	if msg := testutil.AssertContains(pop.View(), "Message 1 sent"); msg != "" {
		t.Error(msg)
	}

	// Show again re-raises the entry text on the main layer and closes
	// the popup.
	newModel, cmd := m.Update(keyMsg(keyEnter))
	m = runCmd(t, newModel.(Model), cmd)

	if m.Popups.IsVisible(popupctl.History) {
		t.Error("show again should close the popup")
	}
	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("show again should raise a notification")
	}
	if item.Text != "Message 1 sent" {
		t.Errorf("Text = %q, want the recorded text", item.Text)
	}
}

func TestHistoryDeleteEntry(t *testing.T) {
	m := newTestAppWithHistory(t)

	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)
	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)

	m = updateModel(t, m, keyMsg("h"))
	newModel, cmd := m.Update(keyMsg("d"))
	m = runCmd(t, newModel.(Model), cmd)

	entries, err := m.History.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 after delete", len(entries))
	}
	if entries[0].Text != "Message 1 sent" {
		t.Errorf("remaining entry = %q, want the older one", entries[0].Text)
	}
	if !m.Popups.IsVisible(popupctl.History) {
		t.Error("popup should stay open after a delete")
	}
}

func TestHistoryClearFlow(t *testing.T) {
	m := newTestAppWithHistory(t)

	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)

	m = updateModel(t, m, keyMsg("h"))

	// 'D' asks for confirmation first.
	newModel, cmd := m.Update(keyMsg("D"))
	m = runCmd(t, newModel.(Model), cmd)
	if !m.Popups.IsVisible(popupctl.Confirm) {
		t.Fatal("clear should raise a confirmation")
	}

	newModel, cmd = m.Update(keyMsg("y"))
	m = runCmd(t, newModel.(Model), cmd)

	entries, err := m.History.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0 after clear", len(entries))
	}
	item, ok := m.Layers.Main.Current()
	if !ok || item.Text != "History cleared" {
		t.Error("clearing should confirm with a notification")
	}
}

func TestHistoryClearDeclined(t *testing.T) {
	m := newTestAppWithHistory(t)

	m = updateModel(t, m, keyMsg("s"))
	m = pumpShown(t, m, m.Layers.Main)

	m = updateModel(t, m, keyMsg("h"))
	newModel, cmd := m.Update(keyMsg("D"))
	m = runCmd(t, newModel.(Model), cmd)

	newModel, cmd = m.Update(keyMsg("n"))
	m = runCmd(t, newModel.(Model), cmd)

	entries, err := m.History.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d, want 1 after declining", len(entries))
	}
}

func TestStderrLineBecomesSticky(t *testing.T) {
	m := newTestApp(t)

	m = updateModel(t, m, StderrMsg{Line: "ALSA underrun"})

	item, ok := m.Layers.Main.Current()
	if !ok {
		t.Fatal("captured stderr should surface as a notification")
	}
	if item.Text != "ALSA underrun" {
		t.Errorf("Text = %q, want the captured line", item.Text)
	}
	if item.Duration != 0 || !item.ShowCloseButton {
		t.Error("stderr notifications should be sticky with a close button")
	}
}

func TestConfigReloadAppliesMaxWidth(t *testing.T) {
	m := newTestApp(t)

	cfg := &config.Config{}
	cfg.Notifications.MaxWidth = 40
	m = updateModel(t, m, ConfigReloadedMsg{Config: cfg})

	if m.Config.Notifications.MaxWidth != 40 {
		t.Error("reload should replace the config")
	}
	item, ok := m.Layers.Main.Current()
	if !ok || item.Text != "Configuration reloaded" {
		t.Error("reload should announce itself")
	}

	m = pumpShown(t, m, m.Layers.Main)
	line := testutil.FindLine(testutil.StripANSI(m.MainBar.View()), "Configuration reloaded")
	if w := testutil.MeasureWidth(line); w != 40 {
		t.Errorf("bar width = %d, want the reloaded cap 40", w)
	}
}

func TestViewBeforeSizing(t *testing.T) {
	layers := notification.NewLayers()
	t.Cleanup(layers.Close)
	m := New(&config.Config{}, layers, nil, nil, nil)

	if view := m.View(); view != "" {
		t.Errorf("View() = %q, want empty before sizing", view)
	}
}
