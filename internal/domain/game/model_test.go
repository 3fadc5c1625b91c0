package game

import (
	"errors"
	"testing"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/standing"
)

func TestTournamentNumbering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxID      int64
		found      bool
		wantNext   int64
		wantEnd    int64
		wantLatest int64
	}{
		{name: "empty mode", wantNext: 0, wantEnd: 0, wantLatest: -1},
		{name: "first tournament recorded", maxID: 0, found: true, wantNext: 1, wantEnd: 0, wantLatest: 0},
		{name: "later tournament", maxID: 12, found: true, wantNext: 13, wantEnd: 12, wantLatest: 12},
	}

	for _, tc := range tests {
		next := NextTournamentID(tc.maxID, tc.found)
		if next != tc.wantNext {
			t.Fatalf("%s: unexpected next: got=%d want=%d", tc.name, next, tc.wantNext)
		}
		if got := EndGameTournamentID(next); got != tc.wantEnd {
			t.Fatalf("%s: unexpected end-game id: got=%d want=%d", tc.name, got, tc.wantEnd)
		}
		if got := LatestTournamentID(next); got != tc.wantLatest {
			t.Fatalf("%s: unexpected latest: got=%d want=%d", tc.name, got, tc.wantLatest)
		}
	}
}

func TestEndGame_ValidateDropsZeroRows(t *testing.T) {
	t.Parallel()

	in := EndGame{
		Mode: scoring.ModeSingles,
		Actions: []action.Entry{
			{PlayerName: "Ann", ActionType: scoring.BallIn, ActionCount: 3},
			{PlayerName: "Ann", ActionType: scoring.Scratch, ActionCount: 0},
		},
		Standings:   []standing.Entry{{PlayerName: "Ann", Standing: 0}, {PlayerName: "Bob", Standing: 0}},
		GamesPlayed: []gamesplayed.Entry{{PlayerName: "Ann", Games: 4}},
	}

	got, err := in.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Actions) != 1 || got.Actions[0].ActionType != scoring.BallIn {
		t.Fatalf("unexpected actions: %+v", got.Actions)
	}
	if len(got.Standings) != 0 {
		t.Fatalf("expected zero standings dropped, got %+v", got.Standings)
	}
	if len(got.GamesPlayed) != 1 {
		t.Fatalf("unexpected games played: %+v", got.GamesPlayed)
	}
}

func TestEndGame_ValidateRejectsUnknownAction(t *testing.T) {
	t.Parallel()

	in := EndGame{
		Mode:    scoring.ModeDoubles,
		Actions: []action.Entry{{PlayerName: "Ann", ActionType: "Jump", ActionCount: 1}},
	}
	if _, err := in.Validate(); !errors.Is(err, scoring.ErrUnknownActionType) {
		t.Fatalf("expected ErrUnknownActionType, got %v", err)
	}

	if _, err := (EndGame{Mode: "triples"}).Validate(); !errors.Is(err, scoring.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}
