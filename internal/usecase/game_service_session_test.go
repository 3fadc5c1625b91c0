package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

func newSQLiteGameService(t *testing.T) *GameService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "league.db")
	db, err := sqlx.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.MigrateUp(db.DB, sqlite.StoreLeague))

	return NewGameService(
		sqlite.NewGameRepository(db),
		sqlite.NewMatchupRepository(db),
		sqlite.NewActionRepository(db),
		sqlite.NewSeasonRepository(db),
		nil,
		logging.NewNop(),
	)
}

func TestGameService_SessionMatchupsShareTournament(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newSQLiteGameService(t)

	playSession := func(wantID int64) {
		t.Helper()
		for _, winner := range []string{"alice", "bob", "alice"} {
			m, err := svc.RecordMatchup(ctx, RecordMatchupInput{
				Player1: "alice",
				Player2: "bob",
				Winner:  winner,
				Mode:    scoring.ModeSingles,
			})
			require.NoError(t, err)
			require.Equal(t, wantID, m.TournamentID)
		}

		res, err := svc.EndGame(ctx, game.EndGame{
			Mode:    scoring.ModeSingles,
			Actions: []action.Entry{{PlayerName: "alice", ActionType: scoring.BallIn, ActionCount: 4}},
		})
		require.NoError(t, err)
		require.Equal(t, wantID, res.TournamentID, "end game lands on the session's matchups")
	}

	playSession(0)
	playSession(1)

	latest, err := svc.LatestTournament(ctx, scoring.ModeSingles)
	require.NoError(t, err)
	require.Equal(t, int64(1), latest.TournamentID)
}
