package service

import (
	"context"
	"fmt"
	"time"

	"kidquest-tracker/internal/constants"
	"kidquest-tracker/internal/domain"
	"kidquest-tracker/internal/repository"
	"kidquest-tracker/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ProgressService is the progress/statistics engine behind the progress
// screen: it records round outcomes and derives GameStats snapshots from the
// stored history on demand.
type ProgressService struct {
	store  *repository.ResultStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewProgressService(store *repository.ResultStore, logger zerolog.Logger) *ProgressService {
	return &ProgressService{store: store, logger: logger, now: time.Now}
}

// RecordResult validates and records one completed round. The write itself is
// fire-and-forget: a persistence failure is logged and the round data is
// lost, which is the accepted best-effort policy for a non-critical app.
func (s *ProgressService) RecordResult(ctx context.Context, result domain.GameResult) error {
	if result.GameID == "" {
		return fmt.Errorf("game id is required")
	}
	if !result.Subject.Valid() {
		return fmt.Errorf("invalid subject %q", result.Subject)
	}
	if result.Score < 0 {
		return fmt.Errorf("score must be non-negative")
	}
	if result.TotalQuestions <= 0 {
		return fmt.Errorf("total questions must be positive")
	}
	if result.CorrectAnswers < 0 || result.CorrectAnswers > result.TotalQuestions {
		return fmt.Errorf("correct answers %d out of range [0, %d]", result.CorrectAnswers, result.TotalQuestions)
	}

	s.logger.Info().
		Str("game_id", result.GameID).
		Str("subject", string(result.Subject)).
		Int("score", result.Score).
		Int("correct", result.CorrectAnswers).
		Int("total", result.TotalQuestions).
		Msg("recording game result")

	g := new(errgroup.Group)
	g.Go(func() error {
		writeCtx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
		defer cancel()
		return s.store.Append(writeCtx, result)
	})

	go func() {
		if err := g.Wait(); err != nil {
			s.logger.Error().Err(err).Str("game_id", result.GameID).Msg("background result write failed")
		}
	}()

	return nil
}

// GetStats recomputes the full GameStats snapshot from the stored history.
func (s *ProgressService) GetStats(ctx context.Context) domain.GameStats {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	history := s.store.All(ctx)
	snapshot := stats.Compute(history, s.now())

	s.logger.Debug().
		Int("games", snapshot.TotalGamesPlayed).
		Int("streak", snapshot.ConsecutiveDays).
		Int("achievements", len(snapshot.Achievements)).
		Msg("stats computed")
	return snapshot
}

// GetRecentGames returns up to limit results, most recent first.
func (s *ProgressService) GetRecentGames(ctx context.Context, limit int) []domain.GameResult {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 {
		limit = constants.RecentGamesDefaultLimit
	}
	if limit > constants.RecentGamesMaxLimit {
		limit = constants.RecentGamesMaxLimit
	}
	return s.store.Recent(ctx, limit)
}

// ClearAllData wipes the stored history. Development/debug reset only.
func (s *ProgressService) ClearAllData(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.store.Clear(ctx)
}
