// Package storage persists generated reports in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/framedata/internal/report"
)

// Store manages the SQLite database connection for report persistence.
type Store struct {
	db *sql.DB
}

// RunEntry summarises one stored report run.
type RunEntry struct {
	ID          int64
	Mod         string
	Fighters    int
	Subactions  int
	Scripts     int
	Diagnostics int
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mod_name TEXT NOT NULL,
			fighters INTEGER NOT NULL DEFAULT 0,
			subactions INTEGER NOT NULL DEFAULT 0,
			scripts INTEGER NOT NULL DEFAULT 0,
			diagnostics INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mod ON runs(mod_name);

		CREATE TABLE IF NOT EXISTS subaction_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			fighter TEXT NOT NULL,
			name TEXT NOT NULL,
			subaction_index INTEGER NOT NULL,
			payload TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_subaction_reports_lookup ON subaction_reports(fighter, name, run_id DESC);

		CREATE TABLE IF NOT EXISTS script_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			scope TEXT NOT NULL,
			script_offset INTEGER NOT NULL,
			payload TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_script_reports_lookup ON script_reports(scope, script_offset, run_id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores every fragment of r in a single transaction.
// Returns the ID of the new run.
func (s *Store) SaveRun(r *report.ModReport) (int64, error) {
	var subactions, scripts int
	for _, f := range r.Fighters {
		subactions += len(f.Subactions)
		scripts += len(f.Scripts)
	}
	scripts += len(r.CommonScripts)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (mod_name, fighters, subactions, scripts, diagnostics)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Name, len(r.Fighters), subactions, scripts, len(r.Diagnostics()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, f := range r.Fighters {
		for i := range f.Subactions {
			sub := &f.Subactions[i]
			payload, err := json.Marshal(sub)
			if err != nil {
				return 0, fmt.Errorf("storage: cannot encode subaction %s/%s: %w", f.Name, sub.Name, err)
			}
			if _, err := tx.Exec(
				`INSERT INTO subaction_reports (run_id, fighter, name, subaction_index, payload)
				 VALUES (?, ?, ?, ?, ?)`,
				runID, f.Name, sub.Name, sub.Index, string(payload),
			); err != nil {
				return 0, fmt.Errorf("storage: cannot save subaction %s/%s: %w", f.Name, sub.Name, err)
			}
		}
		for i := range f.Scripts {
			if err := saveScript(tx, runID, &f.Scripts[i]); err != nil {
				return 0, err
			}
		}
	}
	for i := range r.CommonScripts {
		if err := saveScript(tx, runID, &r.CommonScripts[i]); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return runID, nil
}

func saveScript(tx *sql.Tx, runID int64, sr *report.ScriptReport) error {
	payload, err := json.Marshal(sr)
	if err != nil {
		return fmt.Errorf("storage: cannot encode script %s/0x%x: %w", sr.Scope, sr.Offset, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO script_reports (run_id, scope, script_offset, payload) VALUES (?, ?, ?, ?)`,
		runID, sr.Scope, sr.Offset, string(payload),
	); err != nil {
		return fmt.Errorf("storage: cannot save script %s/0x%x: %w", sr.Scope, sr.Offset, err)
	}
	return nil
}

// Runs retrieves the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mod_name, fighters, subactions, scripts, diagnostics, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mod, &e.Fighters, &e.Subactions, &e.Scripts, &e.Diagnostics, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LatestSubaction returns the most recently stored report of a subaction.
// Returns nil if it was never stored.
func (s *Store) LatestSubaction(fighterName, name string) (*report.SubactionReport, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM subaction_reports
		 WHERE fighter = ? AND name = ?
		 ORDER BY run_id DESC, id DESC
		 LIMIT 1`,
		fighterName, name,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query subaction: %w", err)
	}

	var sub report.SubactionReport
	if err := json.Unmarshal([]byte(payload), &sub); err != nil {
		return nil, fmt.Errorf("storage: cannot decode subaction %s/%s: %w", fighterName, name, err)
	}
	return &sub, nil
}

// LatestScript returns the most recently stored report of a fragment script.
// Returns nil if it was never stored.
func (s *Store) LatestScript(scope string, offset uint32) (*report.ScriptReport, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM script_reports
		 WHERE scope = ? AND script_offset = ?
		 ORDER BY run_id DESC, id DESC
		 LIMIT 1`,
		scope, offset,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query script: %w", err)
	}

	var sr report.ScriptReport
	if err := json.Unmarshal([]byte(payload), &sr); err != nil {
		return nil, fmt.Errorf("storage: cannot decode script %s/0x%x: %w", scope, offset, err)
	}
	return &sr, nil
}

// ClearRuns deletes every stored run and its fragments.
func (s *Store) ClearRuns() error {
	for _, table := range []string{"subaction_reports", "script_reports", "runs"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
