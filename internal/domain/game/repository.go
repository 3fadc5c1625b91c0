package game

import (
	"context"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

type Repository interface {
	// NextTournamentID reads max(tournament id) over actions and matchups of mode.
	NextTournamentID(ctx context.Context, mode scoring.Mode) (int64, error)
	// OpenTournamentID is the id of the session still being played: one past the highest id
	// with recorded actions. Matchups do not advance it.
	OpenTournamentID(ctx context.Context, mode scoring.Mode) (int64, error)
	// RecordEndGame resolves the tournament id and writes the whole batch in one transaction.
	RecordEndGame(ctx context.Context, g EndGame) (Result, error)
}
