package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

type CreateSeasonInput struct {
	SeasonName     string
	StartSinglesID int64
	EndSinglesID   int64
	StartDoublesID int64
	EndDoublesID   int64
}

type SeasonService struct {
	repo   season.Repository
	logger *logging.Logger
}

func NewSeasonService(repo season.Repository, logger *logging.Logger) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonService{repo: repo, logger: logger}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

// Create registers a season. Overlapping ranges are accepted; lookups take the first match.
func (s *SeasonService) Create(ctx context.Context, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	item := season.Season{
		SeasonName:     strings.TrimSpace(input.SeasonName),
		StartSinglesID: input.StartSinglesID,
		EndSinglesID:   input.EndSinglesID,
		StartDoublesID: input.StartDoublesID,
		EndDoublesID:   input.EndDoublesID,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	s.logger.InfoContext(ctx, "season created", "season_id", created.ID, "season_name", created.SeasonName)
	return created, nil
}

// ForTournament resolves the season containing tournamentID for mode.
func (s *SeasonService) ForTournament(ctx context.Context, mode scoring.Mode, tournamentID int64) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ForTournament", modeAttr(mode), tournamentAttr(tournamentID))
	defer span.End()

	if !mode.Valid() {
		return season.Season{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}
	if tournamentID < 0 {
		return season.Season{}, fmt.Errorf("%w: tournament id must not be negative", ErrInvalidInput)
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("list seasons: %w", err)
	}

	item, err := season.Resolve(items, mode, tournamentID)
	if errors.Is(err, season.ErrSeasonNotFound) {
		return season.Season{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if err != nil {
		return season.Season{}, err
	}
	return item, nil
}
