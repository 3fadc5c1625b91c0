package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/fantasy"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	actionmock "github.com/riskibarqy/pool-league/internal/mocks/domain/action"
	fantasymock "github.com/riskibarqy/pool-league/internal/mocks/domain/fantasy"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

type fixedIDGenerator struct {
	id string
}

func (g fixedIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type fantasyServiceFixture struct {
	repo       *fantasymock.Repository
	actionRepo *actionmock.Repository
	recorder   *countingRecorder
	service    *FantasyService
}

func newFantasyServiceFixture(t *testing.T) fantasyServiceFixture {
	t.Helper()

	f := fantasyServiceFixture{
		repo:       fantasymock.NewRepository(t),
		actionRepo: actionmock.NewRepository(t),
		recorder:   &countingRecorder{},
	}
	f.service = NewFantasyService(f.repo, f.actionRepo, fixedIDGenerator{id: "roster-1"}, f.recorder, 2, logging.NewNop())
	f.service.now = func() time.Time { return time.Date(2026, 4, 2, 19, 0, 0, 0, time.UTC) }
	return f
}

var testLeague = fantasy.League{ID: 1, Name: "Spring", Mode: scoring.ModeSingles, StartTournamentID: 20, Weeks: 3}

func testRoster(id, member string, players ...string) fantasy.Roster {
	return fantasy.Roster{
		PlayerID:   id,
		LeagueID:   testLeague.ID,
		MemberName: member,
		T8BI:       players[0],
		FPBI:       players[1],
		OPBI:       players[2],
		OBI:        players[3],
		S:          players[4],
		GSS:        players[0],
	}
}

func TestFantasyService_CreateRoster(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.
		On("CreateRoster", anyCtx(), mock.MatchedBy(func(r fantasy.Roster) bool {
			return r.PlayerID == "roster-1" && r.StartTournamentID == 20 && r.MemberName == "dana"
		})).
		Return(nil).
		Once()

	got, err := f.service.CreateRoster(context.Background(), CreateRosterInput{
		LeagueID:   1,
		MemberName: "dana",
		T8BI:       "alice",
		FPBI:       "bob",
		OPBI:       "carol",
		OBI:        "dave",
		S:          "erin",
		GSS:        "alice",
	})
	require.NoError(t, err)
	require.Equal(t, "roster-1", got.PlayerID)
}

func TestFantasyService_CreateRoster_Errors(t *testing.T) {
	t.Parallel()

	valid := CreateRosterInput{
		LeagueID: 1, MemberName: "dana",
		T8BI: "alice", FPBI: "bob", OPBI: "carol", OBI: "dave", S: "erin", GSS: "alice",
	}

	t.Run("league missing", func(t *testing.T) {
		t.Parallel()
		f := newFantasyServiceFixture(t)
		f.repo.On("GetLeague", anyCtx(), int64(1)).Return(fantasy.League{}, false, nil).Once()

		_, err := f.service.CreateRoster(context.Background(), valid)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repeated slot player", func(t *testing.T) {
		t.Parallel()
		f := newFantasyServiceFixture(t)
		f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()

		input := valid
		input.S = "alice"
		_, err := f.service.CreateRoster(context.Background(), input)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("member already has roster", func(t *testing.T) {
		t.Parallel()
		f := newFantasyServiceFixture(t)
		f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
		f.repo.On("CreateRoster", anyCtx(), mock.Anything).Return(fantasy.ErrRosterExists).Once()

		_, err := f.service.CreateRoster(context.Background(), valid)
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestFantasyService_GenerateSchedule(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	rosters := []fantasy.Roster{
		testRoster("r1", "dana", "a", "b", "c", "d", "e"),
		testRoster("r2", "eli", "a", "b", "c", "d", "e"),
		testRoster("r3", "fay", "a", "b", "c", "d", "e"),
		testRoster("r4", "gus", "a", "b", "c", "d", "e"),
	}

	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.On("ListMatchups", anyCtx(), int64(1), int64(20)).Return([]fantasy.Matchup{}, nil).Once()
	f.repo.On("ListRosters", anyCtx(), int64(1)).Return(rosters, nil).Once()
	f.repo.
		On("CreateMatchups", anyCtx(), mock.MatchedBy(func(ms []fantasy.Matchup) bool {
			for _, m := range ms {
				if m.Team1ID == m.Team2ID {
					return false
				}
			}
			return len(ms) == 6
		})).
		Return(func(_ context.Context, ms []fantasy.Matchup) ([]fantasy.Matchup, error) {
			return ms, nil
		}).
		Once()

	got, err := f.service.GenerateSchedule(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 6)
}

func TestFantasyService_GenerateSchedule_AlreadyScheduled(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.
		On("ListMatchups", anyCtx(), int64(1), int64(20)).
		Return([]fantasy.Matchup{{ID: 1, Team1ID: "r1", Team2ID: "r2"}}, nil).
		Once()

	_, err := f.service.GenerateSchedule(context.Background(), 1)
	require.ErrorIs(t, err, ErrConflict)
}

func TestFantasyService_ListMatchups_ScoresPendingMatchups(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	rosters := []fantasy.Roster{
		testRoster("r1", "dana", "alice", "bob", "carol", "dave", "erin"),
		testRoster("r2", "eli", "bob", "alice", "erin", "carol", "dave"),
	}
	matchups := []fantasy.Matchup{
		{ID: 10, LeagueID: 1, TournamentID: 20, Team1ID: "r1", Team2ID: "r2"},
	}
	tallies := []action.Tally{
		{PlayerName: "alice", TournamentID: 20, ActionType: scoring.EightBallIn, Count: 2},
		{PlayerName: "bob", TournamentID: 20, ActionType: scoring.ThreeBallIn, Count: 2},
		{PlayerName: "bob", TournamentID: 20, ActionType: scoring.FourPlusIn, Count: 1},
	}

	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.On("ListMatchups", anyCtx(), int64(1), int64(20)).Return(matchups, nil).Once()
	f.actionRepo.
		On("ListTallies", anyCtx(), modeFilter(scoring.ModeSingles, &scoring.TournamentRange{From: 20, To: 20})).
		Return(tallies, nil).
		Once()
	f.repo.On("ListRosters", anyCtx(), int64(1)).Return(rosters, nil).Once()
	f.repo.
		On("UpdateMatchupResult", anyCtx(), mock.MatchedBy(func(m fantasy.Matchup) bool { return m.ID == 10 })).
		Return(nil).
		Once()

	got, err := f.service.ListMatchups(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// r1: alice T8BI 2x3=6, bob FPBI 2x3.5+4.75=11.75. r2: bob T8BI 0, alice FPBI 0.
	require.Equal(t, 17.75, got[0].Score1)
	require.Equal(t, 0.0, got[0].Score2)
	require.Equal(t, "r1", got[0].WinnerID)
	require.Equal(t, 1, f.recorder.scored)
}

// closingPool accepts the first accept tasks, running each late on its own goroutine, then
// reports the pool as closed.
type closingPool struct {
	accept int
}

func (p *closingPool) Submit(task func()) error {
	if p.accept == 0 {
		return ants.ErrPoolClosed
	}
	p.accept--
	go func() {
		time.Sleep(30 * time.Millisecond)
		task()
	}()
	return nil
}

func (p *closingPool) Release() {}

func TestFantasyService_ListMatchups_SubmitFailureWaitsForAcceptedTasks(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	f.service.newPool = func(int) (taskPool, error) { return &closingPool{accept: 1}, nil }

	rosters := []fantasy.Roster{
		testRoster("r1", "dana", "alice", "bob", "carol", "dave", "erin"),
		testRoster("r2", "eli", "bob", "alice", "erin", "carol", "dave"),
	}
	matchups := []fantasy.Matchup{
		{ID: 10, LeagueID: 1, TournamentID: 20, Team1ID: "r1", Team2ID: "r2"},
		{ID: 11, LeagueID: 1, TournamentID: 20, Team1ID: "r2", Team2ID: "r1"},
	}

	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.On("ListMatchups", anyCtx(), int64(1), int64(20)).Return(matchups, nil).Once()
	f.actionRepo.
		On("ListTallies", anyCtx(), mock.Anything).
		Return([]action.Tally{{PlayerName: "alice", TournamentID: 20, ActionType: scoring.EightBallIn, Count: 1}}, nil).
		Once()
	f.repo.On("ListRosters", anyCtx(), int64(1)).Return(rosters, nil).Once()
	f.repo.
		On("UpdateMatchupResult", anyCtx(), mock.MatchedBy(func(m fantasy.Matchup) bool { return m.ID == 10 })).
		Return(nil).
		Once()

	_, err := f.service.ListMatchups(context.Background(), 1, 20)
	require.ErrorIs(t, err, ants.ErrPoolClosed)
	require.Equal(t, 1, f.recorder.scored, "accepted task finished before the call returned")
}

func TestFantasyService_ListMatchups_NoActionsYet(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	matchups := []fantasy.Matchup{{ID: 10, LeagueID: 1, TournamentID: 21, Team1ID: "r1", Team2ID: "r2"}}

	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.On("ListMatchups", anyCtx(), int64(1), int64(21)).Return(matchups, nil).Once()
	f.actionRepo.On("ListTallies", anyCtx(), mock.Anything).Return([]action.Tally{}, nil).Once()

	got, err := f.service.ListMatchups(context.Background(), 1, 21)
	require.NoError(t, err)
	require.False(t, got[0].Scored())
}

func TestFantasyService_ListGuesses(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	rosters := []fantasy.Roster{
		testRoster("r1", "dana", "alice", "bob", "carol", "dave", "erin"),
		testRoster("r2", "eli", "bob", "alice", "erin", "carol", "dave"),
	}
	guesses := []fantasy.Guess{
		{PlayerID: "r1", LeagueID: 1, TournamentID: 20, Guess: 10},
		{PlayerID: "r2", LeagueID: 1, TournamentID: 20, Guess: 4},
	}
	tallies := []action.Tally{
		{PlayerName: "alice", TournamentID: 20, ActionType: scoring.BallIn, Count: 7},
		{PlayerName: "bob", TournamentID: 20, ActionType: scoring.BallIn, Count: 4},
		{PlayerName: "bob", TournamentID: 20, ActionType: scoring.Scratch, Count: 1},
	}

	f.repo.On("GetLeague", anyCtx(), int64(1)).Return(testLeague, true, nil).Once()
	f.repo.On("ListGuesses", anyCtx(), int64(1), int64(20)).Return(guesses, nil).Once()
	f.repo.On("ListRosters", anyCtx(), int64(1)).Return(rosters, nil).Once()
	f.actionRepo.On("ListTallies", anyCtx(), mock.Anything).Return(tallies, nil).Once()

	got, err := f.service.ListGuesses(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "eli", got[0].MemberName)
	require.Equal(t, 3.5, got[0].Actual)
	require.Equal(t, 0.5, got[0].Diff)
	require.Equal(t, "dana", got[1].MemberName)
	require.Equal(t, 7.0, got[1].Actual)
	require.Equal(t, 3.0, got[1].Diff)
}

func TestFantasyService_SubmitGuess_UnknownRoster(t *testing.T) {
	t.Parallel()

	f := newFantasyServiceFixture(t)
	f.repo.On("GetRoster", anyCtx(), "ghost").Return(fantasy.Roster{}, false, nil).Once()

	_, err := f.service.SubmitGuess(context.Background(), SubmitGuessInput{PlayerID: "ghost", TournamentID: 20, Guess: 5})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
