package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

// RecordMatchupInput is one live game result. A nil TournamentID means the next tournament.
type RecordMatchupInput struct {
	Player1      string
	Player2      string
	Winner       string
	BallsWon     int
	Overtime     bool
	Mode         scoring.Mode
	TournamentID *int64
}

type LatestTournament struct {
	Mode         scoring.Mode
	TournamentID int64
	Season       *season.Season
}

type EndGameResult struct {
	game.Result
	Game game.EndGame
}

// GameService records live scoring: matchups during play and the end-game batch.
type GameService struct {
	gameRepo    game.Repository
	matchupRepo matchup.Repository
	actionRepo  action.Repository
	seasonRepo  season.Repository
	metrics     MetricsRecorder
	logger      *logging.Logger
	now         func() time.Time
}

func NewGameService(
	gameRepo game.Repository,
	matchupRepo matchup.Repository,
	actionRepo action.Repository,
	seasonRepo season.Repository,
	metrics MetricsRecorder,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		gameRepo:    gameRepo,
		matchupRepo: matchupRepo,
		actionRepo:  actionRepo,
		seasonRepo:  seasonRepo,
		metrics:     recorderOrNoop(metrics),
		logger:      logger,
		now:         time.Now,
	}
}

func (s *GameService) ListPlayers(ctx context.Context) ([]string, error) {
	players, err := s.actionRepo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *GameService) NextTournamentID(ctx context.Context, mode scoring.Mode) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.NextTournamentID", modeAttr(mode))
	defer span.End()

	next, err := s.gameRepo.NextTournamentID(ctx, mode)
	if err != nil {
		return 0, fmt.Errorf("next tournament id mode=%s: %w", mode, err)
	}
	return next, nil
}

// LatestTournament reports next-1 and, when one matches, the season that contains it.
func (s *GameService) LatestTournament(ctx context.Context, mode scoring.Mode) (LatestTournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.LatestTournament", modeAttr(mode))
	defer span.End()

	next, err := s.NextTournamentID(ctx, mode)
	if err != nil {
		return LatestTournament{}, err
	}

	out := LatestTournament{Mode: mode, TournamentID: game.LatestTournamentID(next)}
	if out.TournamentID < 0 {
		return out, nil
	}

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return LatestTournament{}, fmt.Errorf("list seasons: %w", err)
	}
	resolved, err := season.Resolve(seasons, mode, out.TournamentID)
	switch {
	case err == nil:
		out.Season = &resolved
	case errors.Is(err, season.ErrSeasonNotFound):
		// the newest tournaments usually precede their season row
	default:
		return LatestTournament{}, err
	}
	return out, nil
}

func (s *GameService) RecordMatchup(ctx context.Context, input RecordMatchupInput) (matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.RecordMatchup", modeAttr(input.Mode))
	defer span.End()

	m := matchup.Matchup{
		Player1:   strings.TrimSpace(input.Player1),
		Player2:   strings.TrimSpace(input.Player2),
		Winner:    strings.TrimSpace(input.Winner),
		BallsWon:  input.BallsWon,
		Overtime:  input.Overtime,
		Mode:      input.Mode,
		CreatedAt: s.now(),
	}

	if input.TournamentID != nil {
		m.TournamentID = *input.TournamentID
	} else {
		open, err := s.gameRepo.OpenTournamentID(ctx, input.Mode)
		if err != nil {
			return matchup.Matchup{}, fmt.Errorf("open tournament id mode=%s: %w", input.Mode, err)
		}
		m.TournamentID = open
	}

	if err := m.Validate(); err != nil {
		return matchup.Matchup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matchupRepo.Create(ctx, m)
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("create matchup: %w", err)
	}

	s.logger.InfoContext(ctx, "matchup recorded",
		"mode", created.Mode,
		"tournament_id", created.TournamentID,
		"matchup_id", created.ID,
	)
	return created, nil
}

// EndGame writes the tournament's actions, non-zero standings and game counters atomically.
func (s *GameService) EndGame(ctx context.Context, in game.EndGame) (EndGameResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.EndGame", modeAttr(in.Mode))
	defer span.End()

	cleaned, err := in.Validate()
	if err != nil {
		return EndGameResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(cleaned.Actions) == 0 && len(cleaned.Standings) == 0 && len(cleaned.GamesPlayed) == 0 {
		return EndGameResult{}, fmt.Errorf("%w: end game has nothing to record", ErrInvalidInput)
	}

	res, err := s.gameRepo.RecordEndGame(ctx, cleaned)
	if err != nil {
		return EndGameResult{}, fmt.Errorf("record end game mode=%s: %w", cleaned.Mode, err)
	}

	s.metrics.EndGameRecorded(cleaned.Mode, res.ActionsWritten, res.StandingsWritten)
	s.logger.InfoContext(ctx, "end game recorded",
		"mode", cleaned.Mode,
		"tournament_id", res.TournamentID,
		"actions", res.ActionsWritten,
		"standings", res.StandingsWritten,
		"players", len(cleaned.GamesPlayed),
	)
	return EndGameResult{Result: res, Game: cleaned}, nil
}
