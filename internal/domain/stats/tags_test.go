package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/pool-league/internal/domain/season"
)

func TestTagSeasons_ExcludesCurrent(t *testing.T) {
	t.Parallel()

	got := TagSeasons([]season.Season{{ID: 3}, {ID: 1}, {ID: 2}})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected seasons: %+v", got)
	}
	if got := TagSeasons(nil); len(got) != 0 {
		t.Fatalf("expected no seasons, got %+v", got)
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	seasonal := []SeasonRates{
		{
			Season: season.Season{ID: 1, SeasonName: "Season 1"},
			Rates: map[string]Rate{
				"Ann": {PPG: 4.2, PPT: 12, PPS: 0.25},
				"Bob": {PPG: 1, PPT: 2, PPS: 0.1},
			},
		},
		{
			Season: season.Season{ID: 2},
			Rates: map[string]Rate{
				"Ann": {PPG: 3.1, PPT: 9, PPS: 0.1},
			},
		},
	}

	want := map[string][]string{
		"Ann": {"3+ PPG (2 times)", "4+ PPG (Season 1)", "10+ PPT (Season 1)", "0.2+ PPS (Season 1)"},
	}
	if diff := cmp.Diff(want, Tags(seasonal)); diff != "" {
		t.Fatalf("unexpected tags (-want +got):\n%s", diff)
	}

	seasonal[1].Rates["Ann"] = Rate{PPG: 3}
	seasonal[0].Rates["Ann"] = Rate{}
	got := Tags(seasonal)
	if diff := cmp.Diff([]string{"3+ PPG (Season 2)"}, got["Ann"]); diff != "" {
		t.Fatalf("unexpected fallback label (-want +got):\n%s", diff)
	}
}
