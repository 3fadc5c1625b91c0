package season

import (
	"errors"
	"testing"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	seasons := []Season{
		{ID: 1, SeasonName: "Season 1", StartSinglesID: 0, EndSinglesID: 4, StartDoublesID: 0, EndDoublesID: 2},
		{ID: 2, SeasonName: "Season 2", StartSinglesID: 5, EndSinglesID: 10, StartDoublesID: 3, EndDoublesID: 6},
	}

	got, err := Resolve(seasons, scoring.ModeSingles, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("unexpected season: got=%d want=2", got.ID)
	}

	got, err = Resolve(seasons, scoring.ModeDoubles, 2)
	if err != nil || got.ID != 1 {
		t.Fatalf("unexpected doubles resolution: season=%d err=%v", got.ID, err)
	}

	if _, err := Resolve(seasons, scoring.ModeSingles, 11); !errors.Is(err, ErrSeasonNotFound) {
		t.Fatalf("expected ErrSeasonNotFound, got %v", err)
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	if _, ok := Current(nil); ok {
		t.Fatalf("expected no current season for empty list")
	}

	got, ok := Current([]Season{{ID: 3}, {ID: 7}, {ID: 5}})
	if !ok || got.ID != 7 {
		t.Fatalf("unexpected current season: got=%d ok=%v", got.ID, ok)
	}
}

func TestSeason_Validate(t *testing.T) {
	t.Parallel()

	s := Season{SeasonName: "Spring", StartSinglesID: 3, EndSinglesID: 2}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for inverted singles range")
	}
}
