package storage

import (
	"database/sql"
	"fmt"
)

// migrate brings the history schema up to the current version.
func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	var version sql.NullInt64
	err = s.db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("checking migration version: %w", err)
	}
	if version.Valid && version.Int64 >= 1 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS renames (
			id TEXT PRIMARY KEY,
			fabric TEXT NOT NULL,
			network_name TEXT NOT NULL,
			old_display_name TEXT NOT NULL,
			new_display_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating renames table: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_renames_created_at ON renames(created_at)`)
	if err != nil {
		return fmt.Errorf("creating renames index: %w", err)
	}

	if _, err = tx.Exec(`INSERT INTO schema_migrations (version) VALUES (1)`); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}

	return tx.Commit()
}
