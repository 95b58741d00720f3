package repository

import (
	"context"
	"strings"

	"kidquest-tracker/internal/storage"

	"github.com/rs/zerolog"
)

const displayNameKey = "kidquest.display_name"

// ProfileStore holds the user's display name under its own fixed key.
type ProfileStore struct {
	kv     storage.KV
	logger zerolog.Logger
}

func NewProfileStore(kv storage.KV, logger zerolog.Logger) *ProfileStore {
	return &ProfileStore{kv: kv, logger: logger}
}

// DisplayName returns the stored name, or empty if none is set or the read
// failed.
func (s *ProfileStore) DisplayName(ctx context.Context) string {
	name, ok, err := s.kv.Get(ctx, displayNameKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load display name, treating as unset")
		return ""
	}
	if !ok {
		return ""
	}
	return name
}

func (s *ProfileStore) SetDisplayName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := s.kv.Set(ctx, displayNameKey, name); err != nil {
		s.logger.Error().Err(err).Msg("failed to store display name")
		return err
	}
	return nil
}
