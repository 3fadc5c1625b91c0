package stats

import (
	"math"
	"sort"

	"github.com/riskibarqy/pool-league/internal/domain/action"
)

const normalizedMax = 5.0

// normalize min-max scales values to [0, 5]. A zero spread maps every value to 0.
func normalize(values map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	spread := hi - lo
	for name, v := range values {
		if spread == 0 {
			out[name] = 0
			continue
		}
		out[name] = (v - lo) / spread * normalizedMax
	}
	return out
}

type OverallScore struct {
	PlayerName string
	PPG        float64
	PPT        float64
	PPS        float64
	Score      float64
}

// OverallScores weights normalised PPG, PPS and PPT 0.5/0.3/0.2.
func OverallScores(rates map[string]Rate) []OverallScore {
	ppg, ppt, pps := splitRates(rates)
	nPPG, nPPT, nPPS := normalize(ppg), normalize(ppt), normalize(pps)

	out := make([]OverallScore, 0, len(rates))
	for name, r := range rates {
		out = append(out, OverallScore{
			PlayerName: name,
			PPG:        round2(r.PPG),
			PPT:        round2(r.PPT),
			PPS:        round2(r.PPS),
			Score:      round2(0.5*nPPG[name] + 0.3*nPPS[name] + 0.2*nPPT[name]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

type AllNPAScore struct {
	PlayerName      string
	PPG             float64
	PPT             float64
	PPS             float64
	BestTournament  float64
	WorstTournament float64
	Score           float64
}

// AllNPAScores weights normalised PPG 0.45, PPT 0.175, PPS 0.25, best tournament 0.075
// and worst tournament 0.05.
func AllNPAScores(tallies []action.Tally, games map[string]int64) []AllNPAScore {
	rates := Rates(tallies, games)
	ppg, ppt, pps := splitRates(rates)

	best := make(map[string]float64, len(rates))
	worst := make(map[string]float64, len(rates))
	for name, perTournament := range TournamentPoints(tallies) {
		first := true
		for _, points := range perTournament {
			if first || points > best[name] {
				best[name] = points
			}
			if first || points < worst[name] {
				worst[name] = points
			}
			first = false
		}
	}

	nPPG, nPPT, nPPS := normalize(ppg), normalize(ppt), normalize(pps)
	nBest, nWorst := normalize(best), normalize(worst)

	out := make([]AllNPAScore, 0, len(rates))
	for name, r := range rates {
		score := 0.45*nPPG[name] + 0.175*nPPT[name] + 0.25*nPPS[name] + 0.075*nBest[name] + 0.05*nWorst[name]
		out = append(out, AllNPAScore{
			PlayerName:      name,
			PPG:             round2(r.PPG),
			PPT:             round2(r.PPT),
			PPS:             round2(r.PPS),
			BestTournament:  round2(best[name]),
			WorstTournament: round2(worst[name]),
			Score:           round2(score),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

type MVPScore struct {
	PlayerName     string
	SelectionScore float64
	SinglesWinPct  float64
	DoublesWinPct  float64
	Score          float64
}

// MVPScores combines 0.6 x selection score (singles plus doubles All-NPA score) with win
// percentages rescaled from [0,100] to [0,5]: 0.25 singles, 0.15 doubles.
func MVPScores(singles, doubles []AllNPAScore, singlesRecords, doublesRecords map[string]Record) []MVPScore {
	selection := make(map[string]float64)
	for _, s := range singles {
		selection[s.PlayerName] += s.Score
	}
	for _, s := range doubles {
		selection[s.PlayerName] += s.Score
	}

	out := make([]MVPScore, 0, len(selection))
	for name, sel := range selection {
		singlesPct := singlesRecords[name].WinPercentage
		doublesPct := doublesRecords[name].WinPercentage
		score := 0.6*sel + 0.25*scaleWinPct(singlesPct) + 0.15*scaleWinPct(doublesPct)
		out = append(out, MVPScore{
			PlayerName:     name,
			SelectionScore: round2(sel),
			SinglesWinPct:  singlesPct,
			DoublesWinPct:  doublesPct,
			Score:          round2(score),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

func scaleWinPct(pct float64) float64 {
	return pct / 100 * normalizedMax
}

func splitRates(rates map[string]Rate) (ppg, ppt, pps map[string]float64) {
	ppg = make(map[string]float64, len(rates))
	ppt = make(map[string]float64, len(rates))
	pps = make(map[string]float64, len(rates))
	for name, r := range rates {
		ppg[name] = r.PPG
		ppt[name] = r.PPT
		pps[name] = r.PPS
	}
	return ppg, ppt, pps
}
