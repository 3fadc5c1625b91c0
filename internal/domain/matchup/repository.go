package matchup

import (
	"context"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

type Repository interface {
	Create(ctx context.Context, m Matchup) (Matchup, error)
	// ListByMode returns matchups in chronological order (tournament id, then insertion).
	ListByMode(ctx context.Context, mode scoring.Mode, rng *scoring.TournamentRange) ([]Matchup, error)
	MaxTournamentID(ctx context.Context, mode scoring.Mode) (int64, bool, error)
}
