// Package store keeps a history of solver runs in a local SQLite database.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"advent/internal/config"
	"advent/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// ErrDisabled is returned when the history store is turned off in config.
var ErrDisabled = errors.New("answer history is disabled")

var schema = []string{`
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	day INTEGER NOT NULL,
	part1 INTEGER NOT NULL,
	part2 INTEGER NOT NULL,
	input_sha256 TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	solved_at INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_day_solved ON runs(day, solved_at)`,
}

// Run is one recorded solve.
type Run struct {
	ID          string
	Day         int
	Part1       int64
	Part2       int64
	InputSHA256 string
	Duration    time.Duration
	SolvedAt    time.Time
}

// Store wraps the history database.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Digest returns the hex sha256 of an input, used to tell inputs apart.
func Digest(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// OpenConfig opens the store described by cfg, or returns ErrDisabled.
func OpenConfig(cfg config.StoreConfig) (*Store, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	return Open(cfg.Path)
}

// Open creates the parent directory and schema if needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts run, filling in ID and SolvedAt when unset.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.SolvedAt.IsZero() {
		run.SolvedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, day, part1, part2, input_sha256, duration_ms, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Day, run.Part1, run.Part2, run.InputSHA256,
		run.Duration.Milliseconds(), run.SolvedAt.UnixMilli())
	if err != nil {
		return Run{}, fmt.Errorf("failed to record run: %w", err)
	}

	logging.For(logging.FromContext(ctx), logging.CategoryStore).Debug("run recorded",
		zap.String("id", run.ID),
		zap.Int("day", run.Day))
	return run, nil
}

// History lists runs newest first. Day 0 means every day; limit <= 0 means
// no limit.
func (s *Store) History(ctx context.Context, day, limit int) ([]Run, error) {
	query := `SELECT id, day, part1, part2, input_sha256, duration_ms, solved_at FROM runs`
	var args []any
	if day != 0 {
		query += ` WHERE day = ?`
		args = append(args, day)
	}
	query += ` ORDER BY solved_at DESC, rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS, solvedAt int64
		if err := rows.Scan(&r.ID, &r.Day, &r.Part1, &r.Part2, &r.InputSHA256, &durationMS, &solvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.SolvedAt = time.UnixMilli(solvedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
