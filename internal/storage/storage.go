package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// RenameRecord is one recorded display-name change attempt.
type RenameRecord struct {
	ID             string
	Fabric         string
	NetworkName    string
	OldDisplayName string
	NewDisplayName string
	Outcome        string
	CreatedAt      time.Time
}

// Store keeps the local rename history in a SQLite database under dataDir.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the history database.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddRename records one rename attempt. Missing ID and timestamp are filled
// in.
func (s *Store) AddRename(r *RenameRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO renames (id, fabric, network_name, old_display_name, new_display_name, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Fabric, r.NetworkName, r.OldDisplayName, r.NewDisplayName, r.Outcome, r.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording rename: %w", err)
	}
	return nil
}

// ListRenames returns the most recent rename records, newest first.
func (s *Store) ListRenames(limit int) ([]RenameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, fabric, network_name, old_display_name, new_display_name, outcome, created_at
		FROM renames
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing renames: %w", err)
	}
	defer rows.Close()

	var records []RenameRecord
	for rows.Next() {
		var r RenameRecord
		if err := rows.Scan(&r.ID, &r.Fabric, &r.NetworkName, &r.OldDisplayName, &r.NewDisplayName, &r.Outcome, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning rename record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ClearRenames deletes the whole history and returns the number of rows
// removed.
func (s *Store) ClearRenames() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM renames`)
	if err != nil {
		return 0, fmt.Errorf("clearing renames: %w", err)
	}
	return res.RowsAffected()
}

// RecordAttempt opens the history store, appends one rename attempt and
// closes it. History is advisory: every failure is logged and swallowed so
// it can never affect the outcome of the rename itself.
func RecordAttempt(dataDir, fabric, networkName, oldName, newName string, ok bool) {
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailed
	}

	store, err := NewStore(dataDir)
	if err != nil {
		log.Warn("Rename history unavailable", "error", err, "data_dir", dataDir)
		return
	}
	defer store.Close()

	err = store.AddRename(&RenameRecord{
		Fabric:         fabric,
		NetworkName:    networkName,
		OldDisplayName: oldName,
		NewDisplayName: newName,
		Outcome:        outcome,
	})
	if err != nil {
		log.Warn("Failed to record rename", "error", err, "network", networkName)
	}
}
