package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
)

func TestExportService_WriteLeaderboard(t *testing.T) {
	t.Parallel()

	f := newStatsServiceFixture(t)
	f.actionRepo.
		On("ListTallies", anyCtx(), modeFilter(scoring.ModeSingles, nil)).
		Return([]action.Tally{
			{PlayerName: "alice", TournamentID: 0, ActionType: scoring.BallIn, Count: 3},
			{PlayerName: "bob", TournamentID: 0, ActionType: scoring.EightBallIn, Count: 2},
		}, nil).
		Once()
	f.gamesRepo.
		On("List", anyCtx(), scoring.ModeSingles).
		Return([]gamesplayed.Counter{
			{PlayerName: "alice", Tournaments: 1, Games: 3},
			{PlayerName: "bob", Tournaments: 1, Games: 2},
		}, nil).
		Once()
	f.matchupRepo.
		On("ListByMode", anyCtx(), scoring.ModeSingles, (*scoring.TournamentRange)(nil)).
		Return([]matchup.Matchup{{ID: 1, Player1: "alice", Player2: "bob", Winner: "alice", Mode: scoring.ModeSingles}}, nil).
		Once()

	f.actionRepo.On("ListTallies", anyCtx(), modeFilter(scoring.ModeDoubles, nil)).Return([]action.Tally{}, nil).Once()
	f.gamesRepo.On("List", anyCtx(), scoring.ModeDoubles).Return([]gamesplayed.Counter{}, nil).Once()
	f.matchupRepo.
		On("ListByMode", anyCtx(), scoring.ModeDoubles, (*scoring.TournamentRange)(nil)).
		Return([]matchup.Matchup{}, nil).
		Once()

	var buf bytes.Buffer
	require.NoError(t, NewExportService(f.service).WriteLeaderboard(context.Background(), nil, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	require.Equal(t, []string{"Singles", "Doubles"}, book.GetSheetList())

	rows, err := book.GetRows("Singles")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Player", rows[0][0])
	require.Equal(t, "Win %", rows[0][8])

	// bob leads on points (2x3) ahead of alice (3x1).
	require.Equal(t, "bob", rows[1][0])
	require.Equal(t, "6", rows[1][1])
	require.Equal(t, "0-1", rows[1][7])
	require.Equal(t, "alice", rows[2][0])
	require.Equal(t, "1.00", rows[2][4])
	require.Equal(t, "1-0", rows[2][7])

	doubles, err := book.GetRows("Doubles")
	require.NoError(t, err)
	require.Len(t, doubles, 1)
}

func TestExportService_UnknownSeason(t *testing.T) {
	t.Parallel()

	f := newStatsServiceFixture(t)
	seasonID := int64(4)
	f.seasonRepo.On("GetByID", anyCtx(), seasonID).Return(season.Season{}, false, nil).Once()

	var buf bytes.Buffer
	err := NewExportService(f.service).WriteLeaderboard(context.Background(), &seasonID, &buf)
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, buf.Len())
}
