// Package db carries the small database/sql plumbing the history store
// leans on: transaction scoping and converters for nullable columns.
package db

import (
	"database/sql"
	"time"
)

// WithTx runs fn inside a transaction, committing when it returns nil.
// Any error from fn rolls everything back and is returned as-is.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// TimeFromMillis converts a nullable epoch-milliseconds column to a
// *time.Time, nil when the column was NULL.
func TimeFromMillis(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := time.UnixMilli(n.Int64)
	return &t
}

// StringValue unwraps a nullable text column, NULL becoming "".
func StringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
