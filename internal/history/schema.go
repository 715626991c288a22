package history

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS notifications (
			id TEXT PRIMARY KEY,
			layer TEXT NOT NULL,
			text TEXT NOT NULL,
			action_label TEXT,
			shown_at INTEGER NOT NULL,
			dismissed_at INTEGER,
			reason TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_notifications_shown_at ON notifications(shown_at DESC);
		CREATE INDEX IF NOT EXISTS idx_notifications_open ON notifications(layer) WHERE dismissed_at IS NULL;
	`)
	if err != nil {
		return err
	}

	// Stamp a fresh database; an already stamped one keeps its version.
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
