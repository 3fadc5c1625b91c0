package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	seasonmock "github.com/riskibarqy/pool-league/internal/mocks/domain/season"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

func TestSeasonService_ForTournament(t *testing.T) {
	t.Parallel()

	seasons := []season.Season{
		{ID: 1, SeasonName: "Season 1", StartSinglesID: 5, EndSinglesID: 10, StartDoublesID: 0, EndDoublesID: 3},
	}

	tests := []struct {
		name         string
		tournamentID int64
		wantErr      error
	}{
		{name: "inside range", tournamentID: 7},
		{name: "range end is inclusive", tournamentID: 10},
		{name: "past range", tournamentID: 11, wantErr: ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := seasonmock.NewRepository(t)
			repo.On("List", anyCtx()).Return(seasons, nil).Once()
			service := NewSeasonService(repo, logging.NewNop())

			got, err := service.ForTournament(context.Background(), scoring.ModeSingles, tc.tournamentID)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("for tournament: %v", err)
			}
			if got.ID != 1 {
				t.Fatalf("unexpected season: got=%d want=1", got.ID)
			}
		})
	}
}

func TestSeasonService_Create_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	service := NewSeasonService(seasonmock.NewRepository(t), logging.NewNop())
	_, err := service.Create(context.Background(), CreateSeasonInput{
		SeasonName:     "Season 3",
		StartSinglesID: 10,
		EndSinglesID:   4,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_Create(t *testing.T) {
	t.Parallel()

	repo := seasonmock.NewRepository(t)
	repo.
		On("Create", anyCtx(), mock.MatchedBy(func(s season.Season) bool { return s.SeasonName == "Season 3" })).
		Return(season.Season{ID: 3, SeasonName: "Season 3"}, nil).
		Once()

	service := NewSeasonService(repo, logging.NewNop())
	got, err := service.Create(context.Background(), CreateSeasonInput{
		SeasonName:     " Season 3 ",
		StartSinglesID: 20,
		EndSinglesID:   29,
		StartDoublesID: 8,
		EndDoublesID:   12,
	})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected season id: got=%d want=3", got.ID)
	}
}
