package standing

import (
	"math"
	"sort"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// Standing is a player's finishing place in one tournament. 1 is first.
type Standing struct {
	PlayerName   string
	Standing     int
	Mode         scoring.Mode
	TournamentID int64
}

type Entry struct {
	PlayerName string
	Standing   int
}

// NonZero drops entries with a zero standing; those are never persisted.
func NonZero(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Standing != 0 {
			out = append(out, e)
		}
	}
	return out
}

type Summary struct {
	PlayerName string
	Standings  []int
	Average    float64
	Best       int
}

// Summarize groups rows per player, ordered by tournament. Best is the lowest place.
func Summarize(rows []Standing) []Summary {
	sorted := append([]Standing(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TournamentID < sorted[j].TournamentID
	})

	byPlayer := make(map[string]*Summary)
	order := make([]string, 0)
	for _, row := range sorted {
		s, ok := byPlayer[row.PlayerName]
		if !ok {
			s = &Summary{PlayerName: row.PlayerName, Best: row.Standing}
			byPlayer[row.PlayerName] = s
			order = append(order, row.PlayerName)
		}
		s.Standings = append(s.Standings, row.Standing)
		if row.Standing < s.Best {
			s.Best = row.Standing
		}
	}

	sort.Strings(order)
	out := make([]Summary, 0, len(order))
	for _, name := range order {
		s := byPlayer[name]
		total := 0
		for _, v := range s.Standings {
			total += v
		}
		s.Average = math.Round(float64(total)/float64(len(s.Standings))*100) / 100
		out = append(out, *s)
	}
	return out
}
