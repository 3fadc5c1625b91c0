package game

import (
	"fmt"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/standing"
)

// EndGame is everything recorded when a scorekeeper closes a tournament.
type EndGame struct {
	Mode        scoring.Mode
	Actions     []action.Entry
	Standings   []standing.Entry
	GamesPlayed []gamesplayed.Entry
}

// Validate checks every entry and returns a copy with zero-count actions and zero standings removed.
func (g EndGame) Validate() (EndGame, error) {
	if !g.Mode.Valid() {
		return EndGame{}, fmt.Errorf("%w: %q", scoring.ErrUnknownMode, g.Mode)
	}

	out := EndGame{Mode: g.Mode}
	for _, a := range g.Actions {
		if err := a.Validate(); err != nil {
			return EndGame{}, err
		}
		if a.ActionCount == 0 {
			continue
		}
		out.Actions = append(out.Actions, a)
	}
	for _, gp := range g.GamesPlayed {
		if err := gp.Validate(); err != nil {
			return EndGame{}, err
		}
		out.GamesPlayed = append(out.GamesPlayed, gp)
	}
	out.Standings = standing.NonZero(g.Standings)
	return out, nil
}

// Result reports what an end-game write persisted.
type Result struct {
	Mode             scoring.Mode
	TournamentID     int64
	ActionsWritten   int
	StandingsWritten int
}

// NextTournamentID is one past the highest known id, or 0 when the mode has no history.
func NextTournamentID(maxID int64, found bool) int64 {
	if !found {
		return 0
	}
	return maxID + 1
}

// EndGameTournamentID is the id an end-game batch is written under: next-1, never below 0.
func EndGameTournamentID(next int64) int64 {
	if next <= 0 {
		return 0
	}
	return next - 1
}

// LatestTournamentID is next-1, which is -1 for an empty mode.
func LatestTournamentID(next int64) int64 {
	return next - 1
}
