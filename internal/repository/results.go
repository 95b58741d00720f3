package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"kidquest-tracker/internal/constants"
	"kidquest-tracker/internal/domain"
	"kidquest-tracker/internal/storage"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const historyKey = "kidquest.game_results"

// historyEnvelope is the persisted format: the whole history as one JSON blob
// under a single key, with an explicit version field for future migration.
type historyEnvelope struct {
	Version int                 `json:"version"`
	Results []domain.GameResult `json:"results"`
}

const historyVersion = 1

// ResultStore is the append-only history of game results. The underlying KV
// write is a read-modify-write on a single key, so appends are serialized
// through a store-level mutex; concurrent appends from multiple in-flight
// rounds cannot clobber each other, but two processes sharing one database
// still could.
type ResultStore struct {
	kv     storage.KV
	logger zerolog.Logger
	mu     sync.Mutex
	now    func() time.Time
}

func NewResultStore(kv storage.KV, logger zerolog.Logger) *ResultStore {
	return &ResultStore{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

// Append records one completed round, keeping only the most recent
// constants.HistoryLimit results. A missing ID gets a generated one and a
// zero timestamp is assigned at recording time.
func (s *ResultStore) Append(ctx context.Context, result domain.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to generate result id")
			return err
		}
		result.ID = id
	}
	if result.Timestamp == 0 {
		result.Timestamp = s.now().UnixMilli()
	}
	result.CompletedSuccessfully = result.CorrectAnswers > 0

	history := s.load(ctx)
	history = append(history, result)
	if len(history) > constants.HistoryLimit {
		history = history[len(history)-constants.HistoryLimit:]
	}

	if err := s.save(ctx, history); err != nil {
		s.logger.Warn().
			Err(err).
			Str("game_id", result.GameID).
			Msg("failed to persist game result, round data lost")
		return err
	}

	s.logger.Debug().
		Str("id", result.ID).
		Str("game_id", result.GameID).
		Str("subject", string(result.Subject)).
		Int("score", result.Score).
		Int("history_len", len(history)).
		Msg("game result recorded")
	return nil
}

// All returns the stored history in insertion order (oldest first). Read
// errors and corrupt data degrade to an empty history.
func (s *ResultStore) All(ctx context.Context) []domain.GameResult {
	return s.load(ctx)
}

// Recent returns up to n results, most recent first.
func (s *ResultStore) Recent(ctx context.Context, n int) []domain.GameResult {
	history := s.load(ctx)
	if n > len(history) {
		n = len(history)
	}
	if n <= 0 {
		return nil
	}

	out := make([]domain.GameResult, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		out = append(out, history[i])
	}
	return out
}

// Clear deletes the whole history. Development/debug reset only.
func (s *ResultStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, historyKey); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear game results")
		return err
	}
	s.logger.Info().Msg("game result history cleared")
	return nil
}

func (s *ResultStore) load(ctx context.Context) []domain.GameResult {
	raw, ok, err := s.kv.Get(ctx, historyKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load game results, treating as empty")
		return nil
	}
	if !ok {
		return nil
	}

	var envelope historyEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt game result history, treating as empty")
		return nil
	}
	return envelope.Results
}

func (s *ResultStore) save(ctx context.Context, history []domain.GameResult) error {
	raw, err := json.Marshal(historyEnvelope{Version: historyVersion, Results: history})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, historyKey, string(raw))
}
