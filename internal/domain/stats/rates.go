package stats

import (
	"math"
	"strconv"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// Rate is the per-player aggregate behind PPG, PPT and PPS.
type Rate struct {
	TotalPoints float64
	Strokes     int64
	Tournaments int
	Games       int64
	PPG         float64
	PPT         float64
	PPS         float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatRate renders a rate to two decimals; a zero denominator renders "0.00".
func formatRate(value float64, denominator float64) string {
	if denominator == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.00"
	}
	out := strconv.FormatFloat(value, 'f', 2, 64)
	if out == "-0.00" {
		return "0.00"
	}
	return out
}

func TotalPoints(tallies []action.Tally) map[string]float64 {
	out := make(map[string]float64)
	for _, t := range tallies {
		out[t.PlayerName] += t.Points()
	}
	return out
}

// Rates computes every player's rates. games maps player to games played in the same scope.
func Rates(tallies []action.Tally, games map[string]int64) map[string]Rate {
	type acc struct {
		rate        Rate
		tournaments map[int64]struct{}
	}

	byPlayer := make(map[string]*acc)
	for _, t := range tallies {
		a, ok := byPlayer[t.PlayerName]
		if !ok {
			a = &acc{tournaments: make(map[int64]struct{})}
			byPlayer[t.PlayerName] = a
		}
		a.rate.TotalPoints += t.Points()
		a.rate.Strokes += t.Count
		a.tournaments[t.TournamentID] = struct{}{}
	}

	out := make(map[string]Rate, len(byPlayer))
	for name, a := range byPlayer {
		r := a.rate
		r.Tournaments = len(a.tournaments)
		r.Games = games[name]
		if r.Games > 0 {
			r.PPG = r.TotalPoints / float64(r.Games)
		}
		if r.Tournaments > 0 {
			r.PPT = r.TotalPoints / float64(r.Tournaments)
		}
		if r.Strokes > 0 {
			r.PPS = r.TotalPoints / float64(r.Strokes)
		}
		out[name] = r
	}
	return out
}

func PointsPerGame(tallies []action.Tally, games map[string]int64) map[string]string {
	rates := Rates(tallies, games)
	out := make(map[string]string, len(rates))
	for name, r := range rates {
		out[name] = formatRate(r.PPG, float64(r.Games))
	}
	return out
}

func PointsPerTournament(tallies []action.Tally) map[string]string {
	rates := Rates(tallies, nil)
	out := make(map[string]string, len(rates))
	for name, r := range rates {
		out[name] = formatRate(r.PPT, float64(r.Tournaments))
	}
	return out
}

func PointsPerStroke(tallies []action.Tally) map[string]string {
	rates := Rates(tallies, nil)
	out := make(map[string]string, len(rates))
	for name, r := range rates {
		out[name] = formatRate(r.PPS, float64(r.Strokes))
	}
	return out
}

// ActionCounts sums counts per player and action type.
func ActionCounts(tallies []action.Tally) map[string]map[scoring.ActionType]int64 {
	out := make(map[string]map[scoring.ActionType]int64)
	for _, t := range tallies {
		counts, ok := out[t.PlayerName]
		if !ok {
			counts = make(map[scoring.ActionType]int64)
			out[t.PlayerName] = counts
		}
		counts[t.ActionType] += t.Count
	}
	return out
}

// TournamentPoints returns each player's points per tournament id.
func TournamentPoints(tallies []action.Tally) map[string]map[int64]float64 {
	out := make(map[string]map[int64]float64)
	for _, t := range tallies {
		perTournament, ok := out[t.PlayerName]
		if !ok {
			perTournament = make(map[int64]float64)
			out[t.PlayerName] = perTournament
		}
		perTournament[t.TournamentID] += t.Points()
	}
	return out
}
