package gamesplayed

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// Counter holds a player's lifetime tournament count and summed game count for one mode.
type Counter struct {
	PlayerName  string
	Mode        scoring.Mode
	Tournaments int64
	Games       int64
}

// Entry is the number of games a player played in the tournament being recorded.
type Entry struct {
	PlayerName string
	Games      int64
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.PlayerName) == "" {
		return fmt.Errorf("player name is required")
	}
	if e.Games < 0 {
		return fmt.Errorf("games must not be negative: player=%s", e.PlayerName)
	}
	return nil
}

// GamesByPlayer indexes counters by player name.
func GamesByPlayer(counters []Counter) map[string]int64 {
	out := make(map[string]int64, len(counters))
	for _, c := range counters {
		out[c.PlayerName] += c.Games
	}
	return out
}
