package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	basecache "github.com/riskibarqy/pool-league/internal/platform/cache"
)

type actionRepoStub struct {
	calls   int
	tallies []action.Tally
}

func (s *actionRepoStub) ListTallies(context.Context, action.Filter) ([]action.Tally, error) {
	s.calls++
	return s.tallies, nil
}

func (s *actionRepoStub) ListPlayers(context.Context) ([]string, error) {
	s.calls++
	return []string{"Ann"}, nil
}

func (s *actionRepoStub) MaxTournamentID(context.Context, scoring.Mode) (int64, bool, error) {
	return 0, false, nil
}

type gameRepoStub struct{}

func (gameRepoStub) NextTournamentID(context.Context, scoring.Mode) (int64, error) { return 0, nil }
func (gameRepoStub) OpenTournamentID(context.Context, scoring.Mode) (int64, error) { return 0, nil }

func (gameRepoStub) RecordEndGame(_ context.Context, g game.EndGame) (game.Result, error) {
	return game.Result{Mode: g.Mode}, nil
}

type seasonRepoStub struct {
	calls   int
	seasons []season.Season
}

func (s *seasonRepoStub) Create(_ context.Context, in season.Season) (season.Season, error) {
	in.ID = int64(len(s.seasons) + 1)
	s.seasons = append(s.seasons, in)
	return in, nil
}

func (s *seasonRepoStub) List(context.Context) ([]season.Season, error) {
	s.calls++
	return append([]season.Season(nil), s.seasons...), nil
}

func (s *seasonRepoStub) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	s.calls++
	for _, item := range s.seasons {
		if item.ID == id {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func TestActionRepository_EndGameInvalidatesTallies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	next := &actionRepoStub{tallies: []action.Tally{{PlayerName: "Ann", ActionType: scoring.BallIn, Count: 1}}}
	actions := NewActionRepository(next, store)
	games := NewGameRepository(gameRepoStub{}, store)

	filter := action.Filter{Mode: scoring.ModeSingles}
	_, err := actions.ListTallies(ctx, filter)
	require.NoError(t, err)
	_, err = actions.ListTallies(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)

	_, err = games.RecordEndGame(ctx, game.EndGame{Mode: scoring.ModeDoubles})
	require.NoError(t, err)
	_, err = actions.ListTallies(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls, "doubles write keeps singles tallies")

	_, err = games.RecordEndGame(ctx, game.EndGame{Mode: scoring.ModeSingles})
	require.NoError(t, err)
	_, err = actions.ListTallies(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestSeasonRepository_CreateInvalidatesList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &seasonRepoStub{}
	repo := NewSeasonRepository(next, basecache.NewStore(time.Minute))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, found, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.Create(ctx, season.Season{SeasonName: "Season 1"})
	require.NoError(t, err)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, found, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Season 1", got.SeasonName)
}
