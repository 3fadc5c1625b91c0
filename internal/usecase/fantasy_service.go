package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/fantasy"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	idgen "github.com/riskibarqy/pool-league/internal/platform/id"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

const defaultScoringWorkers = 4

type CreateFantasyLeagueInput struct {
	Name              string
	Mode              scoring.Mode
	StartTournamentID int64
	Weeks             int
}

type CreateRosterInput struct {
	LeagueID   int64
	MemberName string
	// StartTournamentID defaults to the league's first tournament.
	StartTournamentID *int64
	T8BI              string
	FPBI              string
	OPBI              string
	OBI               string
	S                 string
	GSS               string
}

type SubmitGuessInput struct {
	PlayerID     string
	TournamentID int64
	Guess        float64
}

// taskPool is the part of *ants.Pool used for matchup scoring.
type taskPool interface {
	Submit(task func()) error
	Release()
}

func newAntsPool(size int) (taskPool, error) {
	return ants.NewPool(size)
}

type FantasyService struct {
	repo       fantasy.Repository
	actionRepo action.Repository
	idGen      idgen.Generator
	metrics    MetricsRecorder
	workers    int
	newPool    func(size int) (taskPool, error)
	logger     *logging.Logger
	now        func() time.Time
}

func NewFantasyService(
	repo fantasy.Repository,
	actionRepo action.Repository,
	idGen idgen.Generator,
	metrics MetricsRecorder,
	workers int,
	logger *logging.Logger,
) *FantasyService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultScoringWorkers
	}

	return &FantasyService{
		repo:       repo,
		actionRepo: actionRepo,
		idGen:      idGen,
		metrics:    recorderOrNoop(metrics),
		workers:    workers,
		newPool:    newAntsPool,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *FantasyService) CreateLeague(ctx context.Context, input CreateFantasyLeagueInput) (fantasy.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.CreateLeague")
	defer span.End()

	league := fantasy.League{
		Name:              strings.TrimSpace(input.Name),
		Mode:              input.Mode,
		StartTournamentID: input.StartTournamentID,
		Weeks:             input.Weeks,
		CreatedAt:         s.now(),
	}
	if err := league.Validate(); err != nil {
		return fantasy.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateLeague(ctx, league)
	if err != nil {
		return fantasy.League{}, fmt.Errorf("create fantasy league: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy league created", "league_id", created.ID, "mode", created.Mode, "weeks", created.Weeks)
	return created, nil
}

func (s *FantasyService) ListLeagues(ctx context.Context) ([]fantasy.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ListLeagues")
	defer span.End()

	leagues, err := s.repo.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy leagues: %w", err)
	}
	return leagues, nil
}

// CreateRoster stores a member's roster. Rosters are immutable once created.
func (s *FantasyService) CreateRoster(ctx context.Context, input CreateRosterInput) (fantasy.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.CreateRoster")
	defer span.End()

	league, err := s.getLeague(ctx, input.LeagueID)
	if err != nil {
		return fantasy.Roster{}, err
	}

	roster := fantasy.Roster{
		LeagueID:          league.ID,
		MemberName:        strings.TrimSpace(input.MemberName),
		StartTournamentID: league.StartTournamentID,
		T8BI:              strings.TrimSpace(input.T8BI),
		FPBI:              strings.TrimSpace(input.FPBI),
		OPBI:              strings.TrimSpace(input.OPBI),
		OBI:               strings.TrimSpace(input.OBI),
		S:                 strings.TrimSpace(input.S),
		GSS:               strings.TrimSpace(input.GSS),
		CreatedAt:         s.now(),
	}
	if input.StartTournamentID != nil {
		roster.StartTournamentID = *input.StartTournamentID
	}
	if err := roster.Validate(); err != nil {
		return fantasy.Roster{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	roster.PlayerID, err = s.idGen.NewID()
	if err != nil {
		return fantasy.Roster{}, fmt.Errorf("generate roster id: %w", err)
	}

	if err := s.repo.CreateRoster(ctx, roster); err != nil {
		if errors.Is(err, fantasy.ErrRosterExists) {
			return fantasy.Roster{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return fantasy.Roster{}, fmt.Errorf("create roster: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy roster created",
		"league_id", roster.LeagueID,
		"player_id", roster.PlayerID,
		"member_name", roster.MemberName,
	)
	return roster, nil
}

func (s *FantasyService) ListRosters(ctx context.Context, leagueID int64) ([]fantasy.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ListRosters")
	defer span.End()

	if _, err := s.getLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	rosters, err := s.repo.ListRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list rosters league=%d: %w", leagueID, err)
	}
	return rosters, nil
}

// GenerateSchedule pairs the league's rosters for every week. A league is scheduled once.
func (s *FantasyService) GenerateSchedule(ctx context.Context, leagueID int64) ([]fantasy.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.GenerateSchedule", leagueAttr(leagueID))
	defer span.End()

	league, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListMatchups(ctx, league.ID, league.StartTournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matchups league=%d: %w", league.ID, err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: league %d is already scheduled", ErrConflict, league.ID)
	}

	rosters, err := s.repo.ListRosters(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("list rosters league=%d: %w", league.ID, err)
	}
	ids := make([]string, 0, len(rosters))
	for _, r := range rosters {
		ids = append(ids, r.PlayerID)
	}

	matchups, err := fantasy.Schedule(league, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateMatchups(ctx, matchups)
	if err != nil {
		return nil, fmt.Errorf("create matchups league=%d: %w", league.ID, err)
	}

	s.logger.InfoContext(ctx, "fantasy schedule generated", "league_id", league.ID, "matchups", len(created))
	return created, nil
}

// ListMatchups returns a week's matchups, scoring any unscored ones once the tournament has actions.
func (s *FantasyService) ListMatchups(ctx context.Context, leagueID, tournamentID int64) ([]fantasy.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ListMatchups", leagueAttr(leagueID), tournamentAttr(tournamentID))
	defer span.End()

	league, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	matchups, err := s.repo.ListMatchups(ctx, league.ID, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matchups league=%d tournament=%d: %w", league.ID, tournamentID, err)
	}

	pending := make([]int, 0, len(matchups))
	for i, m := range matchups {
		if !m.Scored() {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return matchups, nil
	}

	tallies, err := s.tournamentTallies(ctx, league.Mode, tournamentID, nil)
	if err != nil {
		return nil, err
	}
	if len(tallies) == 0 {
		return matchups, nil
	}

	rosters, err := s.repo.ListRosters(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("list rosters league=%d: %w", league.ID, err)
	}
	byID := make(map[string]fantasy.Roster, len(rosters))
	for _, r := range rosters {
		byID[r.PlayerID] = r
	}

	if err := s.scoreMatchups(ctx, league.Mode, matchups, pending, byID, tallies); err != nil {
		return nil, err
	}
	return matchups, nil
}

// scoreMatchups decides matchups[pending...] in place over a bounded worker pool.
func (s *FantasyService) scoreMatchups(
	ctx context.Context,
	mode scoring.Mode,
	matchups []fantasy.Matchup,
	pending []int,
	rosters map[string]fantasy.Roster,
	tallies []action.Tally,
) error {
	pool, err := s.newPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		errs    []error
	)
	for _, idx := range pending {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			m := matchups[idx]
			team1, ok1 := rosters[m.Team1ID]
			team2, ok2 := rosters[m.Team2ID]
			if !ok1 || !ok2 {
				mu.Lock()
				errs = append(errs, fmt.Errorf("matchup %d references an unknown roster", m.ID))
				mu.Unlock()
				return
			}

			score1 := fantasy.ScoreRoster(team1, m.TournamentID, tallies)
			score2 := fantasy.ScoreRoster(team2, m.TournamentID, tallies)
			decided := m.Decide(roundScore(score1.Total), roundScore(score2.Total))
			if err := s.repo.UpdateMatchupResult(ctx, decided); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("update matchup %d: %w", m.ID, err))
				mu.Unlock()
				return
			}

			matchups[idx] = decided
			s.metrics.FantasyMatchupScored(mode)
		}); err != nil {
			workers.Done()
			// tasks already accepted still write into matchups
			workers.Wait()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "fantasy matchups scored", "matchups", len(pending))
	return nil
}

// RosterScore breaks a roster's points for one tournament down by slot.
func (s *FantasyService) RosterScore(ctx context.Context, playerID string, tournamentID int64) (fantasy.RosterScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.RosterScore", tournamentAttr(tournamentID))
	defer span.End()

	roster, league, err := s.getRosterWithLeague(ctx, playerID)
	if err != nil {
		return fantasy.RosterScore{}, err
	}

	players := make([]string, 0, 5)
	for _, b := range roster.SlotPlayers() {
		players = append(players, b.PlayerName)
	}
	tallies, err := s.tournamentTallies(ctx, league.Mode, tournamentID, players)
	if err != nil {
		return fantasy.RosterScore{}, err
	}

	out := fantasy.ScoreRoster(roster, tournamentID, tallies)
	out.Total = roundScore(out.Total)
	return out, nil
}

func (s *FantasyService) SubmitGuess(ctx context.Context, input SubmitGuessInput) (fantasy.Guess, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.SubmitGuess")
	defer span.End()

	if input.TournamentID < 0 {
		return fantasy.Guess{}, fmt.Errorf("%w: tournament id must not be negative", ErrInvalidInput)
	}
	if math.IsNaN(input.Guess) || math.IsInf(input.Guess, 0) {
		return fantasy.Guess{}, fmt.Errorf("%w: guess must be a finite number", ErrInvalidInput)
	}

	roster, _, err := s.getRosterWithLeague(ctx, input.PlayerID)
	if err != nil {
		return fantasy.Guess{}, err
	}

	guess := fantasy.Guess{
		PlayerID:     roster.PlayerID,
		LeagueID:     roster.LeagueID,
		TournamentID: input.TournamentID,
		Guess:        input.Guess,
		CreatedAt:    s.now(),
	}
	if err := s.repo.UpsertGuess(ctx, guess); err != nil {
		return fantasy.Guess{}, fmt.Errorf("upsert guess player=%s: %w", guess.PlayerID, err)
	}
	return guess, nil
}

// ListGuesses compares each guess with its GSS player's points, closest guess first.
func (s *FantasyService) ListGuesses(ctx context.Context, leagueID, tournamentID int64) ([]fantasy.GuessResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ListGuesses", leagueAttr(leagueID), tournamentAttr(tournamentID))
	defer span.End()

	league, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	guesses, err := s.repo.ListGuesses(ctx, league.ID, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list guesses league=%d tournament=%d: %w", league.ID, tournamentID, err)
	}
	if len(guesses) == 0 {
		return []fantasy.GuessResult{}, nil
	}

	rosters, err := s.repo.ListRosters(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("list rosters league=%d: %w", league.ID, err)
	}
	byID := make(map[string]fantasy.Roster, len(rosters))
	for _, r := range rosters {
		byID[r.PlayerID] = r
	}

	tallies, err := s.tournamentTallies(ctx, league.Mode, tournamentID, nil)
	if err != nil {
		return nil, err
	}
	points := make(map[string]float64)
	for _, t := range tallies {
		points[t.PlayerName] += t.Points()
	}

	out := make([]fantasy.GuessResult, 0, len(guesses))
	for _, g := range guesses {
		roster := byID[g.PlayerID]
		actual := roundScore(points[roster.GSS])
		out = append(out, fantasy.GuessResult{
			Guess:      g,
			MemberName: roster.MemberName,
			GSSPlayer:  roster.GSS,
			Actual:     actual,
			Diff:       roundScore(math.Abs(g.Guess - actual)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Diff != out[j].Diff {
			return out[i].Diff < out[j].Diff
		}
		return out[i].MemberName < out[j].MemberName
	})
	return out, nil
}

func (s *FantasyService) getLeague(ctx context.Context, leagueID int64) (fantasy.League, error) {
	if leagueID <= 0 {
		return fantasy.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	league, exists, err := s.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return fantasy.League{}, fmt.Errorf("get fantasy league id=%d: %w", leagueID, err)
	}
	if !exists {
		return fantasy.League{}, fmt.Errorf("%w: fantasy league id=%d", ErrNotFound, leagueID)
	}
	return league, nil
}

func (s *FantasyService) getRosterWithLeague(ctx context.Context, playerID string) (fantasy.Roster, fantasy.League, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fantasy.Roster{}, fantasy.League{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	roster, exists, err := s.repo.GetRoster(ctx, playerID)
	if err != nil {
		return fantasy.Roster{}, fantasy.League{}, fmt.Errorf("get roster player=%s: %w", playerID, err)
	}
	if !exists {
		return fantasy.Roster{}, fantasy.League{}, fmt.Errorf("%w: roster player=%s", ErrNotFound, playerID)
	}

	league, err := s.getLeague(ctx, roster.LeagueID)
	if err != nil {
		return fantasy.Roster{}, fantasy.League{}, err
	}
	return roster, league, nil
}

func (s *FantasyService) tournamentTallies(ctx context.Context, mode scoring.Mode, tournamentID int64, players []string) ([]action.Tally, error) {
	tallies, err := s.actionRepo.ListTallies(ctx, action.Filter{
		Mode:    mode,
		Range:   &scoring.TournamentRange{From: tournamentID, To: tournamentID},
		Players: players,
	})
	if err != nil {
		return nil, fmt.Errorf("list tallies mode=%s tournament=%d: %w", mode, tournamentID, err)
	}
	return tallies, nil
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
