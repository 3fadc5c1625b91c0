package stats

import (
	"math"
	"sort"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// Abramowitz-Stegun 7.1.26.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

func erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	x = math.Abs(x)

	t := 1 / (1 + erfP*x)
	y := 1 - (((((erfA5*t+erfA4)*t)+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)
	return sign * y
}

func normalCDF(z float64) float64 {
	return 0.5 * (1 + erf(z/math.Sqrt2))
}

type Percentile struct {
	PlayerName string
	Average    float64
	ZScore     float64
	Percentile float64
}

// Percentiles ranks players by their per-tournament average count of actionType.
// Negative action types are inverted so that doing less ranks higher.
func Percentiles(tallies []action.Tally, actionType scoring.ActionType) []Percentile {
	counts := make(map[string]int64)
	tournaments := make(map[string]map[int64]struct{})
	for _, t := range tallies {
		seen, ok := tournaments[t.PlayerName]
		if !ok {
			seen = make(map[int64]struct{})
			tournaments[t.PlayerName] = seen
		}
		seen[t.TournamentID] = struct{}{}
		if t.ActionType == actionType {
			counts[t.PlayerName] += t.Count
		}
	}
	if len(tournaments) == 0 {
		return []Percentile{}
	}

	averages := make(map[string]float64, len(tournaments))
	var sum float64
	for name, seen := range tournaments {
		avg := float64(counts[name]) / float64(len(seen))
		averages[name] = avg
		sum += avg
	}
	mean := sum / float64(len(averages))

	var variance float64
	for _, avg := range averages {
		variance += (avg - mean) * (avg - mean)
	}
	std := math.Sqrt(variance / float64(len(averages)))

	out := make([]Percentile, 0, len(averages))
	for name, avg := range averages {
		z := 0.0
		if std > 0 {
			z = (avg - mean) / std
		}
		pct := normalCDF(z) * 100
		if actionType.IsNegative() {
			pct = 100 - pct
		}
		out = append(out, Percentile{
			PlayerName: name,
			Average:    round2(avg),
			ZScore:     round2(z),
			Percentile: round2(pct),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentile != out[j].Percentile {
			return out[i].Percentile > out[j].Percentile
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}
