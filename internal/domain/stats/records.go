package stats

import (
	"strconv"

	"github.com/riskibarqy/pool-league/internal/domain/matchup"
)

type Record struct {
	Wins          int
	Losses        int
	TotalMatches  int
	Record        string
	WinPercentage float64
}

func newRecord(wins, total int) Record {
	r := Record{
		Wins:         wins,
		Losses:       total - wins,
		TotalMatches: total,
	}
	r.Record = strconv.Itoa(r.Wins) + "-" + strconv.Itoa(r.Losses)
	if total > 0 {
		r.WinPercentage = round2(float64(wins) / float64(total) * 100)
	}
	return r
}

// RecordFor is the overall record of name, which may be a semicolon-joined team.
func RecordFor(matchups []matchup.Matchup, name string) Record {
	wins, total := 0, 0
	for _, m := range matchups {
		if m.SideOf(name) == matchup.SideNone {
			continue
		}
		total++
		if m.Won(name) {
			wins++
		}
	}
	return newRecord(wins, total)
}

// Records computes a record for every individual name token that appears in matchups.
func Records(matchups []matchup.Matchup) map[string]Record {
	wins := make(map[string]int)
	totals := make(map[string]int)
	for _, m := range matchups {
		seen := make(map[string]struct{})
		for _, side := range []string{m.Player1, m.Player2} {
			for _, name := range matchup.SplitNames(side) {
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				totals[name]++
				if m.Won(name) {
					wins[name]++
				}
			}
		}
	}

	out := make(map[string]Record, len(totals))
	for name, total := range totals {
		out[name] = newRecord(wins[name], total)
	}
	return out
}

type HeadToHead struct {
	Player1        string
	Player2        string
	Player1Wins    int
	Player2Wins    int
	TotalMatches   int
	LastFive       []matchup.Matchup
	Player1Overall Record
	Player2Overall Record
}

const lastMatchesWindow = 5

// HeadToHeadMatches keeps matchups where the two names sit on opposite sides.
// Input order is preserved; callers pass chronological history.
func HeadToHeadMatches(matchups []matchup.Matchup, player1, player2 string) []matchup.Matchup {
	out := make([]matchup.Matchup, 0)
	for _, m := range matchups {
		side1 := m.SideOf(player1)
		side2 := m.SideOf(player2)
		if side1 == matchup.SideNone || side2 == matchup.SideNone || side1 == side2 {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ComputeHeadToHead fills the direct comparison. Overall records are left for the caller.
// LastFive is oldest first, most recent last.
func ComputeHeadToHead(matchups []matchup.Matchup, player1, player2 string) HeadToHead {
	direct := HeadToHeadMatches(matchups, player1, player2)
	out := HeadToHead{
		Player1:      player1,
		Player2:      player2,
		TotalMatches: len(direct),
	}
	for _, m := range direct {
		switch {
		case m.Won(player1):
			out.Player1Wins++
		case m.Won(player2):
			out.Player2Wins++
		}
	}

	start := len(direct) - lastMatchesWindow
	if start < 0 {
		start = 0
	}
	out.LastFive = append([]matchup.Matchup{}, direct[start:]...)
	return out
}
