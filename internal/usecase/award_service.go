package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/award"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

type GrantAwardInput struct {
	PlayerName string
	Award      string
	Season     string
}

type AwardService struct {
	repo   award.Repository
	logger *logging.Logger
}

func NewAwardService(repo award.Repository, logger *logging.Logger) *AwardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AwardService{repo: repo, logger: logger}
}

func (s *AwardService) List(ctx context.Context) ([]award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}
	return items, nil
}

// Grant bumps the selection counter and appends the season token. Re-granting a season counts twice.
func (s *AwardService) Grant(ctx context.Context, input GrantAwardInput) (award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Grant")
	defer span.End()

	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return award.Award{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	kind, err := award.ParseKind(input.Award)
	if err != nil {
		return award.Award{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(input.Season) == "" {
		return award.Award{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	updated, err := s.repo.Apply(ctx, playerName, func(current award.Award) (award.Award, error) {
		current.PlayerName = playerName
		return current.Grant(kind, input.Season)
	})
	if err != nil {
		return award.Award{}, fmt.Errorf("grant award player=%s: %w", playerName, err)
	}

	s.logger.InfoContext(ctx, "award granted", "player_name", playerName, "award", kind, "season", input.Season)
	return updated, nil
}
