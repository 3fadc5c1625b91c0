package standing

import (
	"context"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

type Repository interface {
	ListByMode(ctx context.Context, mode scoring.Mode, rng *scoring.TournamentRange) ([]Standing, error)
}
