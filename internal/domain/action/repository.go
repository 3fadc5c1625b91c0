package action

import (
	"context"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

// Repository describes the read side of the action log. Writes happen through game.Repository.
type Repository interface {
	ListTallies(ctx context.Context, filter Filter) ([]Tally, error)
	ListPlayers(ctx context.Context) ([]string, error)
	MaxTournamentID(ctx context.Context, mode scoring.Mode) (int64, bool, error)
}
