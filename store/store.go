package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/gasup/engine"
)

// Run is one finished session as stored in the runs table
type Run struct {
	ID       int64
	Seed     int64
	Reason   string
	Altitude float64
	Ticks    int64
	EndedAt  time.Time
}

// Store keeps the best altitude and a log of finished runs in sqlite
// Implements engine.ScoreStore and engine.RunLog
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the database at path, creating parent directories
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: pragmas: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS best (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			altitude REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			reason TEXT NOT NULL,
			altitude REAL NOT NULL,
			ticks INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS runs_altitude ON runs(altitude DESC);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Best returns the stored record, 0 when none exists
func (s *Store) Best(ctx context.Context) (float64, error) {
	var alt float64
	err := s.db.QueryRowContext(ctx, `SELECT altitude FROM best WHERE id = 1`).Scan(&alt)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("store: best: %w", err)
	}
	return alt, nil
}

// Save raises the record to altitude; lower values leave it unchanged
func (s *Store) Save(ctx context.Context, altitude float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO best (id, altitude) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET altitude = MAX(altitude, excluded.altitude)`,
		altitude)
	if err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	return nil
}

// RecordRun appends a finished session to the run log
func (s *Store) RecordRun(ctx context.Context, seed int64, res engine.Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (seed, reason, altitude, ticks, ended_at) VALUES (?, ?, ?, ?, ?)`,
		seed, res.Reason.String(), res.Altitude, res.Ticks, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("store: record run: %w", err)
	}
	return nil
}

// Runs returns up to limit runs, highest altitude first
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, seed, reason, altitude, ticks, ended_at FROM runs ORDER BY altitude DESC, id ASC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("store: runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var ended int64
		if err := rows.Scan(&r.ID, &r.Seed, &r.Reason, &r.Altitude, &r.Ticks, &ended); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		r.EndedAt = time.UnixMilli(ended)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: runs: %w", err)
	}
	return out, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
