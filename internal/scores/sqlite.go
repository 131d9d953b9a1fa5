package scores

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zhubert/guess/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scores (
	id               TEXT PRIMARY KEY,
	position         INTEGER NOT NULL,
	name             TEXT NOT NULL,
	tries            INTEGER NOT NULL,
	number_range     TEXT NOT NULL,
	started_at       TEXT NOT NULL,
	completed_at     TEXT NOT NULL,
	completed_for_ms INTEGER NOT NULL,
	is_hard_mode     INTEGER NOT NULL DEFAULT 0
)`

// SQLiteStore keeps the leaderboard in a SQLite database. Row order is kept
// in the position column so Load returns exactly what Save was given.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.ScoresReadFailed(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.ScoresReadFailed(path, err)
	}
	// One writer; SQLite serializes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.ScoresReadFailed(path, err)
	}
	return &SQLiteStore{path: path, db: db}, nil
}

// Location returns the database path
func (s *SQLiteStore) Location() string {
	return s.path
}

// Load reads all rows in stored order.
func (s *SQLiteStore) Load(ctx context.Context) LoadResult {
	const query = `
		SELECT id, name, tries, number_range, started_at, completed_at, completed_for_ms, is_hard_mode
		FROM scores
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return failedResult(StatusIOFailure, errors.ScoresReadFailed(s.path, err))
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			r                  Record
			started, completed string
			hard               int
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Tries, &r.NumberRange, &started, &completed, &r.ElapsedMS, &hard); err != nil {
			return failedResult(StatusCorrupt, errors.ScoresCorrupt(s.path, err))
		}
		r.HardMode = hard != 0
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return failedResult(StatusCorrupt, errors.ScoresCorrupt(s.path, err))
		}
		if r.CompletedAt, err = time.Parse(time.RFC3339Nano, completed); err != nil {
			return failedResult(StatusCorrupt, errors.ScoresCorrupt(s.path, err))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return failedResult(StatusIOFailure, errors.ScoresReadFailed(s.path, err))
	}
	return okResult(records)
}

// Save replaces every row with records inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, records []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.ScoresSaveFailed(s.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return errors.ScoresSaveFailed(s.path, err)
	}

	const insert = `
		INSERT INTO scores
		(id, position, name, tries, number_range, started_at, completed_at, completed_for_ms, is_hard_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return errors.ScoresSaveFailed(s.path, err)
	}
	defer stmt.Close()

	for i, r := range records {
		hard := 0
		if r.HardMode {
			hard = 1
		}
		_, err := stmt.ExecContext(ctx,
			r.ID, i, r.Name, r.Tries, r.NumberRange,
			r.StartedAt.Format(time.RFC3339Nano), r.CompletedAt.Format(time.RFC3339Nano),
			r.ElapsedMS, hard,
		)
		if err != nil {
			return errors.ScoresSaveFailed(s.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.ScoresSaveFailed(s.path, err)
	}
	return nil
}

// Clear deletes every row.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return errors.ScoresSaveFailed(s.path, err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
