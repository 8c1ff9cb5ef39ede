package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one row per user. Unlike the file backend, concurrent
// writers for different users do not clobber each other.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			profile TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create profiles table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, userID string) (json.RawMessage, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT profile FROM profiles WHERE user_id = ?", userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select profile %q: %w", userID, err)
	}
	return json.RawMessage(raw), nil
}

func (s *SQLiteStore) Put(ctx context.Context, userID string, profile json.RawMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, profile) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET profile = excluded.profile
	`, userID, string(profile))
	if err != nil {
		return fmt.Errorf("upsert profile %q: %w", userID, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	return nil
}
