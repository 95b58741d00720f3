package service

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"kidquest-tracker/internal/api"
	"kidquest-tracker/internal/constants"
	"kidquest-tracker/internal/domain"

	"github.com/rs/zerolog"
)

//go:embed packs/*.json
var embeddedPacks embed.FS

// ContentService hands subject screens their question/card/pattern packs.
// When a remote content API is configured it is tried first; any failure
// falls back to the packs embedded in the binary, so a screen always gets a
// full data set.
type ContentService struct {
	client *api.ContentClient
	logger zerolog.Logger
}

func NewContentService(client *api.ContentClient, logger zerolog.Logger) *ContentService {
	return &ContentService{client: client, logger: logger}
}

func (s *ContentService) Pack(ctx context.Context, subject domain.Subject) (*domain.Pack, error) {
	if !subject.Valid() {
		return nil, fmt.Errorf("invalid subject %q", subject)
	}

	if s.client.Enabled() {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		resp, err := s.client.GetPack(apiCtx, subject)
		if err == nil {
			s.logger.Debug().Str("subject", string(subject)).Msg("pack fetched from content API")
			return &resp.Data, nil
		}
		s.logger.Warn().Err(err).Str("subject", string(subject)).Msg("content API fetch failed, using embedded pack")
	}

	return s.embeddedPack(subject)
}

func (s *ContentService) embeddedPack(subject domain.Subject) (*domain.Pack, error) {
	raw, err := embeddedPacks.ReadFile(fmt.Sprintf("packs/%s.json", subject))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded pack for %s: %w", subject, err)
	}

	var pack domain.Pack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse embedded pack for %s: %w", subject, err)
	}
	return &pack, nil
}
