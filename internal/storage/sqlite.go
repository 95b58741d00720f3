package storage

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
)

// SQLite stores each key as a row in the kv table. A Set is a single upsert
// statement, so an individual write is atomic.
type SQLite struct {
	db     *sql.DB
	logger zerolog.Logger
}

var _ KV = (*SQLite)(nil)

func NewSQLite(db *sql.DB, logger zerolog.Logger) *SQLite {
	return &SQLite{db: db, logger: logger}
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read key")
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write key")
		return err
	}
	return nil
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to remove key")
		return err
	}
	return nil
}
