package fantasy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

func validRoster() Roster {
	return Roster{
		PlayerID:   "r1",
		LeagueID:   1,
		MemberName: "Zed",
		T8BI:       "Ann",
		FPBI:       "Bob",
		OPBI:       "Cid",
		OBI:        "Dee",
		S:          "Eve",
		GSS:        "Ann",
	}
}

func TestRoster_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Roster)
		targetErr error
		wantErr   bool
	}{
		{name: "valid roster", mutate: func(*Roster) {}},
		{name: "gss may repeat a slot player", mutate: func(r *Roster) { r.GSS = "Eve" }},
		{name: "repeated slot player", mutate: func(r *Roster) { r.S = "Bob" }, targetErr: ErrDuplicateSlotPlayer, wantErr: true},
		{name: "empty slot", mutate: func(r *Roster) { r.OBI = " " }, wantErr: true},
		{name: "missing member", mutate: func(r *Roster) { r.MemberName = "" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validRoster()
			tc.mutate(&r)
			err := r.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.targetErr != nil && !errors.Is(err, tc.targetErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tc.targetErr)
			}
		})
	}
}

func TestScoreRoster(t *testing.T) {
	t.Parallel()

	tallies := []action.Tally{
		{PlayerName: "Ann", TournamentID: 4, ActionType: scoring.EightBallIn, Count: 1},
		{PlayerName: "Ann", TournamentID: 4, ActionType: scoring.OppEightBall, Count: 2},
		{PlayerName: "Bob", TournamentID: 4, ActionType: scoring.ThreeBallIn, Count: 2},
		{PlayerName: "Bob", TournamentID: 4, ActionType: scoring.FourPlusIn, Count: 1},
		{PlayerName: "Cid", TournamentID: 4, ActionType: scoring.BallIn, Count: 3},
		{PlayerName: "Cid", TournamentID: 4, ActionType: scoring.TwoBallIn, Count: 1},
		{PlayerName: "Dee", TournamentID: 4, ActionType: scoring.OppBallIn, Count: 2},
		{PlayerName: "Eve", TournamentID: 4, ActionType: scoring.Scratch, Count: 3},
		{PlayerName: "Bob", TournamentID: 5, ActionType: scoring.FourPlusIn, Count: 9},
	}

	got := ScoreRoster(validRoster(), 4, tallies)
	require.Len(t, got.Slots, 5)

	t8 := got.Slots[0]
	assert.Equal(t, SlotT8BI, t8.Slot)
	assert.Equal(t, int64(1), t8.Made)
	assert.Equal(t, int64(2), t8.Opp)
	assert.Equal(t, -1.0, t8.Value, "T8BI nets signed values")

	assert.Equal(t, 11.75, got.Slots[1].Value)
	assert.Equal(t, 5.25, got.Slots[2].Value)
	assert.Equal(t, 2.0, got.Slots[3].Value)
	assert.Equal(t, 1.5, got.Slots[4].Value)
	assert.Equal(t, 19.5, got.Total)
}

func TestMatchup_DecideTieGoesToTeam2(t *testing.T) {
	t.Parallel()

	m := Matchup{Team1ID: "a", Team2ID: "b"}

	assert.Equal(t, "a", m.Decide(10, 9).WinnerID)
	assert.Equal(t, "b", m.Decide(9, 10).WinnerID)
	tie := m.Decide(7.5, 7.5)
	assert.Equal(t, "b", tie.WinnerID)
	assert.True(t, tie.Scored())
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	league := League{ID: 3, Name: "Winter", Mode: scoring.ModeSingles, StartTournamentID: 10, Weeks: 3}

	got, err := Schedule(league, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Len(t, got, 6)

	pairs := make(map[string]int)
	perWeek := make(map[int64]map[string]bool)
	for _, m := range got {
		assert.NotEqual(t, m.Team1ID, m.Team2ID)
		assert.Equal(t, int64(3), m.LeagueID)
		key := m.Team1ID + m.Team2ID
		if m.Team2ID < m.Team1ID {
			key = m.Team2ID + m.Team1ID
		}
		pairs[key]++

		week, ok := perWeek[m.TournamentID]
		if !ok {
			week = make(map[string]bool)
			perWeek[m.TournamentID] = week
		}
		assert.False(t, week[m.Team1ID], "roster plays twice in one week")
		assert.False(t, week[m.Team2ID], "roster plays twice in one week")
		week[m.Team1ID] = true
		week[m.Team2ID] = true
	}

	assert.Len(t, pairs, 6, "three weeks of four rosters cover every pairing once")
	assert.Len(t, perWeek, 3)
	for _, id := range []int64{10, 11, 12} {
		assert.Contains(t, perWeek, id)
	}
}

func TestSchedule_OddRostersGetBye(t *testing.T) {
	t.Parallel()

	league := League{ID: 1, Name: "Odd", Mode: scoring.ModeDoubles, StartTournamentID: 0, Weeks: 3}

	got, err := Schedule(league, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	sat := make(map[string]int)
	for _, m := range got {
		assert.NotEqual(t, m.Team1ID, m.Team2ID)
		sat[m.Team1ID]++
		sat[m.Team2ID]++
	}
	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, 2, sat[id], "roster %s plays every week but its bye", id)
	}
}

func TestSchedule_Errors(t *testing.T) {
	t.Parallel()

	league := League{Weeks: 1}
	_, err := Schedule(league, []string{"a"})
	assert.True(t, errors.Is(err, ErrNotEnoughRosters))

	_, err = Schedule(league, []string{"a", "a"})
	assert.Error(t, err)
}
