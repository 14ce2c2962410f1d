// Package db persists run history: one row per simulation run, a transfer
// ledger of every hourly decision, and region level snapshots.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"acequia/internal/logger"
	"acequia/internal/policy"
)

// Store wraps the run-history SQLite database.
type Store struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	version := 0
	// Try to read current version
	s.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS runs (
				id         TEXT PRIMARY KEY,
				scenario   TEXT NOT NULL,
				started_at TEXT NOT NULL,
				hours      INTEGER NOT NULL,
				solved     INTEGER NOT NULL,
				winnable   INTEGER NOT NULL,
				penalty    INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

			CREATE TABLE IF NOT EXISTS transfers (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id      TEXT NOT NULL REFERENCES runs(id),
				hour        INTEGER NOT NULL,
				canal       TEXT NOT NULL,
				source      TEXT NOT NULL,
				destination TEXT NOT NULL,
				outcome     TEXT NOT NULL,
				reason      TEXT,
				amount      REAL NOT NULL,
				rate        REAL NOT NULL,
				delivered   REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_transfers_run ON transfers(run_id);

			CREATE TABLE IF NOT EXISTS region_levels (
				run_id TEXT NOT NULL,
				hour   INTEGER NOT NULL,
				region TEXT NOT NULL,
				level  REAL NOT NULL,
				PRIMARY KEY (run_id, hour, region)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		logger.Info("DB", "Applied migration v1")
	}

	return nil
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// SaveRun writes the run row and its full decision ledger in one
// transaction.
func (s *Store) SaveRun(runID string, startedAt time.Time, res *policy.RunResult) error {
	tx, err := s.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, scenario, started_at, hours, solved, winnable, penalty)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, res.Scenario, startedAt.UTC().Format(time.RFC3339),
		res.Hours, boolToInt(res.Solved), boolToInt(res.Winnable), res.Penalty)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO transfers (run_id, hour, canal, source, destination, outcome, reason, amount, rate, delivered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare transfers: %w", err)
	}
	defer stmt.Close()
	for _, d := range res.Decisions {
		if _, err := stmt.Exec(runID, d.Hour, d.Canal, d.Source, d.Destination,
			string(d.Outcome), string(d.Reason), d.Amount, d.Rate, d.Delivered); err != nil {
			return fmt.Errorf("insert transfer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// RegionLevel is one region's level at a given hour, for snapshots.
type RegionLevel struct {
	Region string
	Level  float64
}

// SaveLevels records a region level snapshot for a run at the given hour.
func (s *Store) SaveLevels(runID string, hour int, levels []RegionLevel) error {
	tx, err := s.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, l := range levels {
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO region_levels (run_id, hour, region, level)
			VALUES (?, ?, ?, ?)`, runID, hour, l.Region, l.Level); err != nil {
			return fmt.Errorf("insert level: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit levels: %w", err)
	}
	return nil
}

// RunSummary is one row of run history for reporting.
type RunSummary struct {
	ID        string
	Scenario  string
	StartedAt string
	Hours     int
	Solved    bool
	Winnable  bool
	Penalty   int
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	rows, err := s.sql.Query(`
		SELECT id, scenario, started_at, hours, solved, winnable, penalty
		FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var solved, winnable int
		if err := rows.Scan(&r.ID, &r.Scenario, &r.StartedAt, &r.Hours, &solved, &winnable, &r.Penalty); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Solved = solved != 0
		r.Winnable = winnable != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// TransferCount returns how many ledger rows a run wrote, split by outcome.
func (s *Store) TransferCount(runID string) (applied, skipped int, err error) {
	rows, err := s.sql.Query(`
		SELECT outcome, COUNT(*) FROM transfers WHERE run_id = ? GROUP BY outcome`, runID)
	if err != nil {
		return 0, 0, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return 0, 0, fmt.Errorf("scan transfer count: %w", err)
		}
		switch policy.Outcome(outcome) {
		case policy.OutcomeApplied:
			applied = n
		case policy.OutcomeSkipped:
			skipped = n
		}
	}
	return applied, skipped, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
