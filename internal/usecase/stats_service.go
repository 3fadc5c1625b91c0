package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	"github.com/riskibarqy/pool-league/internal/domain/standing"
	"github.com/riskibarqy/pool-league/internal/domain/stats"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

// StatsQuery scopes a statistic to one mode and, optionally, one season.
type StatsQuery struct {
	Mode     scoring.Mode
	SeasonID *int64
}

type statsScope struct {
	mode scoring.Mode
	rng  *scoring.TournamentRange
}

// LeaderboardRow is one player's line in the exported leaderboard.
type LeaderboardRow struct {
	PlayerName  string
	TotalPoints float64
	Tournaments int
	Games       int64
	PPG         string
	PPT         string
	PPS         string
	Record      stats.Record
}

type StatsService struct {
	actionRepo   action.Repository
	matchupRepo  matchup.Repository
	seasonRepo   season.Repository
	standingRepo standing.Repository
	gamesRepo    gamesplayed.Repository
	logger       *logging.Logger
}

func NewStatsService(
	actionRepo action.Repository,
	matchupRepo matchup.Repository,
	seasonRepo season.Repository,
	standingRepo standing.Repository,
	gamesRepo gamesplayed.Repository,
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsService{
		actionRepo:   actionRepo,
		matchupRepo:  matchupRepo,
		seasonRepo:   seasonRepo,
		standingRepo: standingRepo,
		gamesRepo:    gamesRepo,
		logger:       logger,
	}
}

func (s *StatsService) TotalPoints(ctx context.Context, q StatsQuery) (map[string]float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TotalPoints", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, err := s.loadTallies(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.TotalPoints(tallies), nil
}

func (s *StatsService) PointsPerGame(ctx context.Context, q StatsQuery) (map[string]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PointsPerGame", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, games, err := s.loadTalliesAndGames(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.PointsPerGame(tallies, games), nil
}

func (s *StatsService) PointsPerTournament(ctx context.Context, q StatsQuery) (map[string]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PointsPerTournament", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, err := s.loadTallies(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.PointsPerTournament(tallies), nil
}

func (s *StatsService) PointsPerStroke(ctx context.Context, q StatsQuery) (map[string]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PointsPerStroke", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, err := s.loadTallies(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.PointsPerStroke(tallies), nil
}

func (s *StatsService) ActionCounts(ctx context.Context, q StatsQuery) (map[string]map[scoring.ActionType]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ActionCounts", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, err := s.loadTallies(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.ActionCounts(tallies), nil
}

func (s *StatsService) Records(ctx context.Context, q StatsQuery) (map[string]stats.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Records", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	matchups, err := s.loadMatchups(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.Records(matchups), nil
}

// HeadToHead compares two players or semicolon-joined teams. Overall records cover the same scope.
func (s *StatsService) HeadToHead(ctx context.Context, q StatsQuery, player1, player2 string) (stats.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.HeadToHead", queryAttrs(q)...)
	defer span.End()

	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)
	if player1 == "" || player2 == "" {
		return stats.HeadToHead{}, fmt.Errorf("%w: player1 and player2 are required", ErrInvalidInput)
	}
	if player1 == player2 {
		return stats.HeadToHead{}, fmt.Errorf("%w: players must differ", ErrInvalidInput)
	}

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return stats.HeadToHead{}, err
	}
	matchups, err := s.loadMatchups(ctx, sc)
	if err != nil {
		return stats.HeadToHead{}, err
	}

	out := stats.ComputeHeadToHead(matchups, player1, player2)
	out.Player1Overall = stats.RecordFor(matchups, player1)
	out.Player2Overall = stats.RecordFor(matchups, player2)
	return out, nil
}

func (s *StatsService) Percentiles(ctx context.Context, q StatsQuery, actionType scoring.ActionType) ([]stats.Percentile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Percentiles", queryAttrs(q)...)
	defer span.End()

	if !actionType.Valid() {
		return nil, fmt.Errorf("%w: unknown action type %q", ErrInvalidInput, actionType)
	}

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, err := s.loadTallies(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.Percentiles(tallies, actionType), nil
}

// Tags evaluates every finished season of mode concurrently and merges the earned tags.
func (s *StatsService) Tags(ctx context.Context, mode scoring.Mode) (map[string][]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Tags", modeAttr(mode))
	defer span.End()

	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	p := pool.NewWithResults[stats.SeasonRates]().WithErrors().WithContext(ctx).WithMaxGoroutines(4)
	for _, item := range stats.TagSeasons(seasons) {
		p.Go(func(ctx context.Context) (stats.SeasonRates, error) {
			rng := item.Range(mode)
			tallies, games, err := s.loadTalliesAndGames(ctx, statsScope{mode: mode, rng: &rng})
			if err != nil {
				return stats.SeasonRates{}, fmt.Errorf("season %d: %w", item.ID, err)
			}
			return stats.SeasonRates{Season: item, Rates: stats.Rates(tallies, games)}, nil
		})
	}

	seasonal, err := p.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(seasonal, func(i, j int) bool { return seasonal[i].Season.ID < seasonal[j].Season.ID })
	return stats.Tags(seasonal), nil
}

func (s *StatsService) Standings(ctx context.Context, q StatsQuery) ([]standing.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Standings", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	rows, err := s.standingRepo.ListByMode(ctx, sc.mode, sc.rng)
	if err != nil {
		return nil, fmt.Errorf("list standings mode=%s: %w", sc.mode, err)
	}
	return standing.Summarize(rows), nil
}

func (s *StatsService) GamesPlayed(ctx context.Context, q StatsQuery) (map[string]gamesplayed.Counter, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GamesPlayed", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	counters, err := s.loadCounters(ctx, sc)
	if err != nil {
		return nil, err
	}

	out := make(map[string]gamesplayed.Counter, len(counters))
	for _, c := range counters {
		out[c.PlayerName] = c
	}
	return out, nil
}

func (s *StatsService) OverallScores(ctx context.Context, q StatsQuery) ([]stats.OverallScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.OverallScores", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, games, err := s.loadTalliesAndGames(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.OverallScores(stats.Rates(tallies, games)), nil
}

func (s *StatsService) AllNPA(ctx context.Context, q StatsQuery) ([]stats.AllNPAScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AllNPA", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, games, err := s.loadTalliesAndGames(ctx, sc)
	if err != nil {
		return nil, err
	}
	return stats.AllNPAScores(tallies, games), nil
}

// MVP ranks players over both modes of one season (or all history when seasonID is nil).
func (s *StatsService) MVP(ctx context.Context, seasonID *int64) ([]stats.MVPScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MVP")
	defer span.End()

	type modeResult struct {
		scores  []stats.AllNPAScore
		records map[string]stats.Record
	}

	var singles, doubles modeResult
	p := pool.New().WithErrors().WithContext(ctx)
	for _, item := range []struct {
		mode scoring.Mode
		dst  *modeResult
	}{
		{mode: scoring.ModeSingles, dst: &singles},
		{mode: scoring.ModeDoubles, dst: &doubles},
	} {
		p.Go(func(ctx context.Context) error {
			sc, err := s.resolveScope(ctx, StatsQuery{Mode: item.mode, SeasonID: seasonID})
			if err != nil {
				return err
			}
			tallies, games, err := s.loadTalliesAndGames(ctx, sc)
			if err != nil {
				return err
			}
			matchups, err := s.loadMatchups(ctx, sc)
			if err != nil {
				return err
			}
			item.dst.scores = stats.AllNPAScores(tallies, games)
			item.dst.records = stats.Records(matchups)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return stats.MVPScores(singles.scores, doubles.scores, singles.records, doubles.records), nil
}

// Leaderboard joins rates and records per player, sorted by total points.
func (s *StatsService) Leaderboard(ctx context.Context, q StatsQuery) ([]LeaderboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Leaderboard", queryAttrs(q)...)
	defer span.End()

	sc, err := s.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}
	tallies, games, err := s.loadTalliesAndGames(ctx, sc)
	if err != nil {
		return nil, err
	}
	matchups, err := s.loadMatchups(ctx, sc)
	if err != nil {
		return nil, err
	}

	ppg := stats.PointsPerGame(tallies, games)
	ppt := stats.PointsPerTournament(tallies)
	pps := stats.PointsPerStroke(tallies)
	records := stats.Records(matchups)

	rates := stats.Rates(tallies, games)
	out := make([]LeaderboardRow, 0, len(rates))
	for name, r := range rates {
		record, ok := records[name]
		if !ok {
			record = stats.RecordFor(nil, name)
		}
		out = append(out, LeaderboardRow{
			PlayerName:  name,
			TotalPoints: r.TotalPoints,
			Tournaments: r.Tournaments,
			Games:       r.Games,
			PPG:         ppg[name],
			PPT:         ppt[name],
			PPS:         pps[name],
			Record:      record,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out, nil
}

func (s *StatsService) resolveScope(ctx context.Context, q StatsQuery) (statsScope, error) {
	if !q.Mode.Valid() {
		return statsScope{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, q.Mode)
	}
	if q.SeasonID == nil {
		return statsScope{mode: q.Mode}, nil
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, *q.SeasonID)
	if err != nil {
		return statsScope{}, fmt.Errorf("get season id=%d: %w", *q.SeasonID, err)
	}
	if !exists {
		return statsScope{}, fmt.Errorf("%w: season id=%d", ErrNotFound, *q.SeasonID)
	}

	rng := item.Range(q.Mode)
	return statsScope{mode: q.Mode, rng: &rng}, nil
}

func (s *StatsService) loadTallies(ctx context.Context, sc statsScope) ([]action.Tally, error) {
	tallies, err := s.actionRepo.ListTallies(ctx, action.Filter{Mode: sc.mode, Range: sc.rng})
	if err != nil {
		return nil, fmt.Errorf("list tallies mode=%s: %w", sc.mode, err)
	}
	return tallies, nil
}

func (s *StatsService) loadMatchups(ctx context.Context, sc statsScope) ([]matchup.Matchup, error) {
	matchups, err := s.matchupRepo.ListByMode(ctx, sc.mode, sc.rng)
	if err != nil {
		return nil, fmt.Errorf("list matchups mode=%s: %w", sc.mode, err)
	}
	return matchups, nil
}

// loadCounters reads lifetime counters, or the per-tournament game log when scoped to a season.
func (s *StatsService) loadCounters(ctx context.Context, sc statsScope) ([]gamesplayed.Counter, error) {
	var (
		counters []gamesplayed.Counter
		err      error
	)
	if sc.rng == nil {
		counters, err = s.gamesRepo.List(ctx, sc.mode)
	} else {
		counters, err = s.gamesRepo.ListForRange(ctx, sc.mode, *sc.rng)
	}
	if err != nil {
		return nil, fmt.Errorf("list games played mode=%s: %w", sc.mode, err)
	}
	return counters, nil
}

func (s *StatsService) loadTalliesAndGames(ctx context.Context, sc statsScope) ([]action.Tally, map[string]int64, error) {
	var (
		tallies  []action.Tally
		counters []gamesplayed.Counter
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		tallies, err = s.loadTallies(ctx, sc)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		counters, err = s.loadCounters(ctx, sc)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return tallies, gamesplayed.GamesByPlayer(counters), nil
}
