package gamesplayed

import (
	"context"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

type Repository interface {
	// List returns the lifetime counters.
	List(ctx context.Context, mode scoring.Mode) ([]Counter, error)
	// ListForRange sums the per-tournament game log over rng.
	ListForRange(ctx context.Context, mode scoring.Mode, rng scoring.TournamentRange) ([]Counter, error)
}
