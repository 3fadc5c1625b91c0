package stats

import (
	"sort"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/pool-league/internal/domain/season"
)

type tagMetric struct {
	suffix     string
	thresholds []float64
	value      func(Rate) float64
}

var tagMetrics = []tagMetric{
	{suffix: "PPG", thresholds: []float64{3, 4, 5, 6, 7}, value: func(r Rate) float64 { return r.PPG }},
	{suffix: "PPT", thresholds: []float64{10, 15, 20, 25, 30}, value: func(r Rate) float64 { return r.PPT }},
	{suffix: "PPS", thresholds: []float64{0.2, 0.3, 0.4, 0.5}, value: func(r Rate) float64 { return r.PPS }},
}

// SeasonRates pairs a finished season with the rates its players posted.
type SeasonRates struct {
	Season season.Season
	Rates  map[string]Rate
}

// TagSeasons drops the current (highest id) season, which is still in progress.
func TagSeasons(seasons []season.Season) []season.Season {
	current, ok := season.Current(seasons)
	if !ok {
		return nil
	}
	out := make([]season.Season, 0, len(seasons))
	for _, s := range seasons {
		if s.ID != current.ID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Tags awards every threshold a player cleared in each season given.
// A tag earned once names its season; a repeated tag collapses to "(N times)".
func Tags(seasonal []SeasonRates) map[string][]string {
	type earned struct {
		seasons []string
	}

	byPlayer := make(map[string]map[string]*earned)
	for _, sr := range seasonal {
		seasonLabel := sr.Season.SeasonName
		if seasonLabel == "" {
			seasonLabel = "Season " + strconv.FormatInt(sr.Season.ID, 10)
		}
		for name, rate := range sr.Rates {
			for _, metric := range tagMetrics {
				value := metric.value(rate)
				for _, threshold := range metric.thresholds {
					if value < threshold {
						break
					}
					tags, ok := byPlayer[name]
					if !ok {
						tags = make(map[string]*earned)
						byPlayer[name] = tags
					}
					label := thresholdLabel(threshold, metric.suffix)
					e, ok := tags[label]
					if !ok {
						e = &earned{}
						tags[label] = e
					}
					e.seasons = append(e.seasons, seasonLabel)
				}
			}
		}
	}

	out := make(map[string][]string, len(byPlayer))
	for name, tags := range byPlayer {
		list := make([]string, 0, len(tags))
		for _, metric := range tagMetrics {
			for _, threshold := range metric.thresholds {
				label := thresholdLabel(threshold, metric.suffix)
				e, ok := tags[label]
				if !ok {
					continue
				}
				list = append(list, annotate(label, e.seasons))
			}
		}
		out[name] = list
	}
	return out
}

func thresholdLabel(threshold float64, suffix string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(strconv.FormatFloat(threshold, 'f', -1, 64))
	_, _ = buf.WriteString("+ ")
	_, _ = buf.WriteString(suffix)
	return buf.String()
}

func annotate(label string, seasons []string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(label)
	_, _ = buf.WriteString(" (")
	if len(seasons) == 1 {
		_, _ = buf.WriteString(seasons[0])
	} else {
		_, _ = buf.WriteString(strconv.Itoa(len(seasons)))
		_, _ = buf.WriteString(" times")
	}
	_ = buf.WriteByte(')')
	return buf.String()
}
