package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS saved_inputs (
	kind     TEXT PRIMARY KEY,
	saved_at INTEGER NOT NULL,
	params   TEXT NOT NULL
)`

// SQLiteStore persists saved inputs in a SQLite database file.
type SQLiteStore struct {
	sqlDB     *sql.DB
	freshness time.Duration
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string, freshness time.Duration) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB, freshness: freshness}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, kind domain.Kind, params any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, savedAt, err := encodeParams(params)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO saved_inputs (kind, saved_at, params) VALUES (?, ?, ?)
		 ON CONFLICT(kind) DO UPDATE SET saved_at = excluded.saved_at, params = excluded.params`,
		string(kind), toMillis(savedAt), string(data))
	if err != nil {
		return fmt.Errorf("save %s inputs: %w", kind, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, kind domain.Kind, into any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		savedAt int64
		params  string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT saved_at, params FROM saved_inputs WHERE kind = ?`, string(kind)).Scan(&savedAt, &params)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s inputs: %w", kind, err)
	}
	return decodeParams(fromMillis(savedAt), []byte(params), s.freshness, into)
}

func (s *SQLiteStore) Delete(ctx context.Context, kind domain.Kind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saved_inputs WHERE kind = ?`, string(kind)); err != nil {
		return fmt.Errorf("delete %s inputs: %w", kind, err)
	}
	return nil
}
