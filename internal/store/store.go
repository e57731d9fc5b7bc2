// Package store exports ranked frequency lists to SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tokfreq/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps a SQLite export file for one run.
type Store struct {
	db  *sql.DB
	run model.RunConfig
}

// RunInfo describes the run recorded alongside an export.
type RunInfo struct {
	InputPath   string
	Options     string
	Types       int
	Tokens      int
	GeneratedAt time.Time
}

// Open opens or creates the SQLite file and resets its tables, so a file never
// carries data from an earlier run.
func Open(path string, run model.RunConfig) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, run: run}
	if err := store.reset(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on reset failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) reset() error {
	stmts := []string{
		`DROP TABLE IF EXISTS frequencies;`,
		`DROP TABLE IF EXISTS run;`,
		`CREATE TABLE run (
			input_path TEXT NOT NULL,
			options TEXT NOT NULL,
			types INTEGER NOT NULL,
			tokens INTEGER NOT NULL,
			generated_at TEXT NOT NULL
		);`,
		`CREATE TABLE frequencies (
			rank INTEGER PRIMARY KEY,
			token TEXT NOT NULL UNIQUE,
			count INTEGER NOT NULL CHECK (count > 0)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Export stores the ranked entries with 1-based ranks and the run summary.
func (s *Store) Export(ctx context.Context, entries []model.Entry) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	tokens := 0
	for _, e := range entries {
		tokens += int(e.Count)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO run (input_path, options, types, tokens, generated_at) VALUES (?, ?, ?, ?, ?)`,
		s.run.InputPath,
		describeOptions(s.run),
		len(entries),
		tokens,
		time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return err
	}

	if len(entries) > 0 {
		stmt, perr := tx.PrepareContext(ctx, `INSERT INTO frequencies (rank, token, count) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, e := range entries {
			if _, err = stmt.ExecContext(ctx, i+1, e.Token, e.Count); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Entries returns the exported ranking in rank order.
func (s *Store) Entries(ctx context.Context) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT token, count FROM frequencies ORDER BY rank ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.Token, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Run returns the recorded run summary.
func (s *Store) Run(ctx context.Context) (RunInfo, error) {
	var info RunInfo
	var generatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT input_path, options, types, tokens, generated_at FROM run`,
	).Scan(&info.InputPath, &info.Options, &info.Types, &info.Tokens, &generatedAt)
	if err != nil {
		return RunInfo{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, generatedAt)
	if err != nil {
		return RunInfo{}, err
	}
	info.GeneratedAt = parsed
	return info, nil
}

func describeOptions(cfg model.RunConfig) string {
	return fmt.Sprintf("strip=%t lower=%t stem=%t stop=%t proper=%t nfc=%t",
		cfg.StripPunctuation, cfg.Lowercase, cfg.Stem, cfg.RemoveStopWords, cfg.ProperNouns, cfg.NFC)
}
