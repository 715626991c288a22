package history

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/snackbar/internal/notification"
)

// setupTestStore creates a store backed by an in-memory SQLite database.
func setupTestStore(t *testing.T, keep int) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, initSchema(db), "init schema")

	return &Store{db: db, keep: keep}
}

func TestRecent_Empty(t *testing.T) {
	s := setupTestStore(t, 0)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordAndRecent(t *testing.T) {
	s := setupTestStore(t, 0)

	item := notification.Item{ID: "a", Text: "Saved to drafts"}
	require.NoError(t, s.Record("main", item))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "a", e.ID)
	assert.Equal(t, "main", e.Layer)
	assert.Equal(t, "Saved to drafts", e.Text)
	assert.Empty(t, e.ActionLabel)
	assert.False(t, e.ShownAt.IsZero(), "ShownAt should be set")
	assert.Nil(t, e.DismissedAt, "open entry should have no dismissal time")
	assert.Empty(t, e.Reason, "open entry should have no reason")
}

func TestRecord_ActionLabel(t *testing.T) {
	s := setupTestStore(t, 0)

	item := notification.Item{
		ID:     "a",
		Text:   "Message deleted",
		Action: &notification.Action{Label: "Undo", Invoke: func() {}},
	}
	require.NoError(t, s.Record("main", item))

	entries, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Undo", entries[0].ActionLabel)
}

func TestRecord_MarksPreviousReplaced(t *testing.T) {
	s := setupTestStore(t, 0)

	require.NoError(t, s.Record("main", notification.Item{ID: "a", Text: "first"}))
	require.NoError(t, s.Record("main", notification.Item{ID: "b", Text: "second"}))
	// A different layer must not be affected.
	require.NoError(t, s.Record("modal", notification.Item{ID: "c", Text: "sheet"}))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	assert.Equal(t, ReasonReplaced, byID["a"].Reason)
	assert.NotNil(t, byID["a"].DismissedAt, "replaced entry should have a dismissal time")
	assert.Nil(t, byID["b"].DismissedAt, "current main entry should still be open")
	assert.Nil(t, byID["c"].DismissedAt, "modal entry should still be open")
}

func TestMarkDismissed(t *testing.T) {
	s := setupTestStore(t, 0)

	require.NoError(t, s.Record("main", notification.Item{ID: "a", Text: "Saved"}))
	require.NoError(t, s.MarkDismissed("a", ReasonExpired))

	entries, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ReasonExpired, entries[0].Reason)
	require.NotNil(t, entries[0].DismissedAt)

	// A second dismissal must not overwrite the original reason.
	require.NoError(t, s.MarkDismissed("a", ReasonClosed))

	entries, err = s.Recent(1)
	require.NoError(t, err)
	assert.Equal(t, ReasonExpired, entries[0].Reason, "second mark must not overwrite the reason")
}

func TestRecord_PrunesBeyondRetention(t *testing.T) {
	s := setupTestStore(t, 3)

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Record("main", notification.Item{ID: id, Text: "item " + id}))
	}

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e", entries[0].ID)
	assert.Equal(t, "d", entries[1].ID)
	assert.Equal(t, "c", entries[2].ID)
}

func TestRecent_NewestFirst(t *testing.T) {
	s := setupTestStore(t, 0)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Record("main", notification.Item{ID: id, Text: id}))
	}

	entries, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t, 0)

	for _, id := range []string{"a", "b"} {
		require.NoError(t, s.Record("main", notification.Item{ID: id, Text: id}))
	}

	require.NoError(t, s.Delete("a"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].ID)

	// Deleting a missing id is a no-op.
	require.NoError(t, s.Delete("a"))
}

func TestClear(t *testing.T) {
	s := setupTestStore(t, 0)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Record("main", notification.Item{ID: id, Text: id}))
	}

	require.NoError(t, s.Clear())

	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
