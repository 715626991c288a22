// Package history persists shown notifications in a local SQLite database
// so past items survive restarts and can be browsed from the history popup.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/snackbar/internal/db"
	"github.com/llehouerou/snackbar/internal/notification"
)

const (
	appName    = "snackbar"
	dbFileName = "history.db"
)

// Reason explains why an entry was dismissed.
type Reason string

const (
	ReasonExpired  Reason = "expired"  // auto-dismiss timer fired
	ReasonClosed   Reason = "closed"   // close affordance used
	ReasonAction   Reason = "action"   // action invoked
	ReasonReplaced Reason = "replaced" // preempted by a newer item
	ReasonCleared  Reason = "cleared"  // hidden programmatically
)

// Entry is one recorded notification.
type Entry struct {
	ID          string
	Layer       string
	Text        string
	ActionLabel string
	ShownAt     time.Time
	DismissedAt *time.Time
	Reason      Reason
}

// Store records and queries notification history.
type Store struct {
	db   *sql.DB
	keep int
}

// Open opens (creating if needed) the history database in the XDG data
// directory. keep bounds the number of retained rows; zero or negative
// keeps everything.
func Open(keep int) (*Store, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, keep)
}

// OpenPath opens the history database at an explicit path.
func OpenPath(dbPath string, keep int) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, keep: keep}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a freshly shown item. Any still-visible entry on the same
// layer is marked replaced first: showing always preempts, so at most one
// row per layer can be open at a time. Old rows beyond the retention limit
// are pruned in the same transaction.
func (s *Store) Record(layer string, item notification.Item) error {
	now := time.Now().UnixMilli()

	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			UPDATE notifications
			SET dismissed_at = ?, reason = ?
			WHERE layer = ? AND dismissed_at IS NULL
		`, now, string(ReasonReplaced), layer)
		if err != nil {
			return err
		}

		var actionLabel sql.NullString
		if item.Action != nil {
			actionLabel = sql.NullString{String: item.Action.Label, Valid: true}
		}

		_, err = tx.Exec(`
			INSERT INTO notifications (id, layer, text, action_label, shown_at)
			VALUES (?, ?, ?, ?, ?)
		`, item.ID, layer, item.Text, actionLabel, now)
		if err != nil {
			return err
		}

		return pruneTx(tx, s.keep)
	})
}

// MarkDismissed closes the entry for id with the given reason. Entries that
// are already closed keep their original reason.
func (s *Store) MarkDismissed(id string, reason Reason) error {
	_, err := s.db.Exec(`
		UPDATE notifications
		SET dismissed_at = ?, reason = ?
		WHERE id = ? AND dismissed_at IS NULL
	`, time.Now().UnixMilli(), string(reason), id)
	return err
}

// Delete removes a single entry.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM notifications WHERE id = ?`, id)
	return err
}

// Clear removes all entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM notifications`)
	return err
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, layer, text, action_label, shown_at, dismissed_at, reason
		FROM notifications
		ORDER BY shown_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var actionLabel, reason sql.NullString
		var shownAt int64
		var dismissedAt sql.NullInt64

		if err := rows.Scan(&e.ID, &e.Layer, &e.Text, &actionLabel, &shownAt, &dismissedAt, &reason); err != nil {
			return nil, err
		}

		e.ActionLabel = dbutil.StringValue(actionLabel)
		e.Reason = Reason(dbutil.StringValue(reason))
		e.ShownAt = time.UnixMilli(shownAt)
		e.DismissedAt = dbutil.TimeFromMillis(dismissedAt)

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune drops the oldest rows beyond the retention limit.
func (s *Store) Prune() error {
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		return pruneTx(tx, s.keep)
	})
}

func pruneTx(tx *sql.Tx, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := tx.Exec(`
		DELETE FROM notifications
		WHERE rowid NOT IN (
			SELECT rowid FROM notifications
			ORDER BY shown_at DESC, rowid DESC
			LIMIT ?
		)
	`, keep)
	return err
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
