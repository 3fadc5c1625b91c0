package fantasy

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// League groups rosters that play a fixed number of weekly tournaments.
type League struct {
	ID                int64
	Name              string
	Mode              scoring.Mode
	StartTournamentID int64
	Weeks             int
	CreatedAt         time.Time
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if !l.Mode.Valid() {
		return fmt.Errorf("%w: %q", scoring.ErrUnknownMode, l.Mode)
	}
	if l.StartTournamentID < 0 {
		return fmt.Errorf("start tournament id must not be negative")
	}
	if l.Weeks <= 0 {
		return fmt.Errorf("weeks must be greater than zero")
	}
	return nil
}

// Tournaments lists the tournament ids the league plays, one per week.
func (l League) Tournaments() []int64 {
	out := make([]int64, 0, l.Weeks)
	for week := 0; week < l.Weeks; week++ {
		out = append(out, l.StartTournamentID+int64(week))
	}
	return out
}

// Roster binds each stat slot to a real player. GSS is the player whose points the member guesses.
type Roster struct {
	PlayerID          string
	LeagueID          int64
	MemberName        string
	StartTournamentID int64
	T8BI              string
	FPBI              string
	OPBI              string
	OBI               string
	S                 string
	GSS               string
	CreatedAt         time.Time
}

// SlotPlayers returns the player bound to each scoring slot in slot order.
func (r Roster) SlotPlayers() []SlotBinding {
	return []SlotBinding{
		{Slot: SlotT8BI, PlayerName: r.T8BI},
		{Slot: SlotFPBI, PlayerName: r.FPBI},
		{Slot: SlotOPBI, PlayerName: r.OPBI},
		{Slot: SlotOBI, PlayerName: r.OBI},
		{Slot: SlotS, PlayerName: r.S},
	}
}

type SlotBinding struct {
	Slot       Slot
	PlayerName string
}

// Matchup pairs two rosters for one tournament. WinnerID stays empty until scored.
type Matchup struct {
	ID           int64
	LeagueID     int64
	TournamentID int64
	Team1ID      string
	Team2ID      string
	Score1       float64
	Score2       float64
	WinnerID     string
}

func (m Matchup) Scored() bool {
	return m.WinnerID != ""
}

// Guess is a member's prediction of the GSS player's total points in a tournament.
type Guess struct {
	PlayerID     string
	LeagueID     int64
	TournamentID int64
	Guess        float64
	CreatedAt    time.Time
}

// GuessResult compares a guess against what the GSS player actually scored.
type GuessResult struct {
	Guess
	MemberName string
	GSSPlayer  string
	Actual     float64
	Diff       float64
}
