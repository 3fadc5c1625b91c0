package action

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// Action is one persisted scoring event batch: a player's count of one action type in a tournament.
type Action struct {
	ID           int64
	PlayerName   string
	ActionType   scoring.ActionType
	ActionCount  int64
	Mode         scoring.Mode
	TournamentID int64
}

func (a Action) Points() float64 {
	return scoring.Points(a.ActionType, a.ActionCount)
}

// Entry is the client-submitted shape of an action before a tournament id is assigned.
type Entry struct {
	PlayerName  string
	ActionType  scoring.ActionType
	ActionCount int64
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.PlayerName) == "" {
		return fmt.Errorf("player name is required")
	}
	if !e.ActionType.Valid() {
		return fmt.Errorf("%w: %q", scoring.ErrUnknownActionType, e.ActionType)
	}
	if e.ActionCount < 0 {
		return fmt.Errorf("action count must not be negative: player=%s action=%s", e.PlayerName, e.ActionType)
	}
	return nil
}

// Tally is SUM(action_count) for one player, tournament and action type.
type Tally struct {
	PlayerName   string
	TournamentID int64
	ActionType   scoring.ActionType
	Count        int64
}

func (t Tally) Points() float64 {
	return scoring.Points(t.ActionType, t.Count)
}

// Filter narrows a tally query. A nil Range means every tournament of the mode.
type Filter struct {
	Mode    scoring.Mode
	Range   *scoring.TournamentRange
	Players []string
}
