package matchup

import (
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

var ErrInvalidWinner = crerr.New("winner must be player1 or player2")

// Side of a matchup a name was found on.
type Side int

const (
	SideNone Side = iota
	SidePlayer1
	SidePlayer2
)

// Matchup is one game result. Player1 and Player2 hold semicolon-joined names for doubles teams.
type Matchup struct {
	ID           int64
	Player1      string
	Player2      string
	Winner       string
	BallsWon     int
	Overtime     bool
	Mode         scoring.Mode
	TournamentID int64
	CreatedAt    time.Time
}

func (m Matchup) Validate() error {
	if strings.TrimSpace(m.Player1) == "" || strings.TrimSpace(m.Player2) == "" {
		return fmt.Errorf("player1 and player2 are required")
	}
	if !m.Mode.Valid() {
		return fmt.Errorf("%w: %q", scoring.ErrUnknownMode, m.Mode)
	}
	if m.Winner != m.Player1 && m.Winner != m.Player2 {
		return crerr.Wrapf(ErrInvalidWinner, "winner=%q", m.Winner)
	}
	if m.BallsWon < 0 {
		return fmt.Errorf("balls won must not be negative")
	}
	if m.TournamentID < 0 {
		return fmt.Errorf("tournament id must not be negative")
	}
	return nil
}

// SplitNames returns the trimmed, non-empty name tokens of one side.
func SplitNames(side string) []string {
	parts := strings.Split(side, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// SideOf reports which side holds every token of name. A name split across both sides is SideNone.
func (m Matchup) SideOf(name string) Side {
	tokens := SplitNames(name)
	if len(tokens) == 0 {
		return SideNone
	}
	switch {
	case containsAll(SplitNames(m.Player1), tokens):
		return SidePlayer1
	case containsAll(SplitNames(m.Player2), tokens):
		return SidePlayer2
	default:
		return SideNone
	}
}

// Won reports whether name is on the winning side.
func (m Matchup) Won(name string) bool {
	tokens := SplitNames(name)
	return len(tokens) > 0 && containsAll(SplitNames(m.Winner), tokens)
}

func containsAll(haystack, needles []string) bool {
	for _, needle := range needles {
		found := false
		for _, candidate := range haystack {
			if candidate == needle {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
