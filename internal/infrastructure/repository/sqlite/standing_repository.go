package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/standing"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByMode(ctx context.Context, mode scoring.Mode, rng *scoring.TournamentRange) ([]standing.Standing, error) {
	query, args, err := qb.Select("player_name", "standing", "mode", "tournament_id").
		From("standings").
		Where(
			qb.Eq("mode", string(mode)),
			rangeCondition("tournament_id", rng),
		).
		OrderBy("tournament_id", "player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings mode=%s: %w", mode, err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			PlayerName:   row.PlayerName,
			Standing:     row.Standing,
			Mode:         scoring.Mode(row.Mode),
			TournamentID: row.TournamentID,
		})
	}
	return out, nil
}

type GamesPlayedRepository struct {
	db *sqlx.DB
}

func NewGamesPlayedRepository(db *sqlx.DB) *GamesPlayedRepository {
	return &GamesPlayedRepository{db: db}
}

func (r *GamesPlayedRepository) List(ctx context.Context, mode scoring.Mode) ([]gamesplayed.Counter, error) {
	query, args, err := qb.Select("g.player_name AS player_name", "g.mode AS mode", "g.tournaments AS tournaments", "t.games AS games").
		From("player_games g LEFT JOIN player_tournament_games t ON t.player_name = g.player_name AND t.mode = g.mode").
		Where(qb.Eq("g.mode", string(mode))).
		OrderBy("g.player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games played query: %w", err)
	}

	return r.selectCounters(ctx, query, args, mode)
}

func (r *GamesPlayedRepository) ListForRange(ctx context.Context, mode scoring.Mode, rng scoring.TournamentRange) ([]gamesplayed.Counter, error) {
	query, args, err := qb.Select("player_name", "mode", "COUNT(*) AS tournaments", "SUM(games) AS games").
		From("player_tournament_game_log").
		Where(
			qb.Eq("mode", string(mode)),
			qb.Between("tournament_id", rng.From, rng.To),
		).
		GroupBy("player_name", "mode").
		OrderBy("player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season games query: %w", err)
	}

	return r.selectCounters(ctx, query, args, mode)
}

func (r *GamesPlayedRepository) selectCounters(ctx context.Context, query string, args []any, mode scoring.Mode) ([]gamesplayed.Counter, error) {
	var rows []gamesPlayedRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games played mode=%s: %w", mode, err)
	}

	out := make([]gamesplayed.Counter, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamesplayed.Counter{
			PlayerName:  row.PlayerName,
			Mode:        scoring.Mode(row.Mode),
			Tournaments: row.Tournaments,
			Games:       row.Games.Int64,
		})
	}
	return out, nil
}
