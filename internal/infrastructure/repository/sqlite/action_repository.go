package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

type ActionRepository struct {
	db *sqlx.DB
}

func NewActionRepository(db *sqlx.DB) *ActionRepository {
	return &ActionRepository{db: db}
}

func (r *ActionRepository) ListTallies(ctx context.Context, filter action.Filter) ([]action.Tally, error) {
	var playerCond qb.Condition
	if len(filter.Players) > 0 {
		names := make([]any, 0, len(filter.Players))
		for _, name := range filter.Players {
			names = append(names, name)
		}
		playerCond = qb.In("player_name", names)
	}

	query, args, err := qb.Select("player_name", "tournament_id", "action_type", "SUM(action_count) AS count").
		From("player_actions").
		Where(
			qb.Eq("mode", string(filter.Mode)),
			rangeCondition("tournament_id", filter.Range),
			playerCond,
		).
		GroupBy("player_name", "tournament_id", "action_type").
		OrderBy("player_name", "tournament_id", "action_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tallies query: %w", err)
	}

	var rows []tallyRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tallies mode=%s: %w", filter.Mode, err)
	}

	out := make([]action.Tally, 0, len(rows))
	for _, row := range rows {
		out = append(out, action.Tally{
			PlayerName:   row.PlayerName,
			TournamentID: row.TournamentID,
			ActionType:   scoring.ActionType(row.ActionType),
			Count:        row.Count,
		})
	}
	return out, nil
}

func (r *ActionRepository) ListPlayers(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("DISTINCT player_name").
		From("player_actions").
		OrderBy("player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return names, nil
}

func (r *ActionRepository) MaxTournamentID(ctx context.Context, mode scoring.Mode) (int64, bool, error) {
	return maxTournamentID(ctx, r.db, "player_actions", mode)
}

func maxTournamentID(ctx context.Context, q sqlx.QueryerContext, table string, mode scoring.Mode) (int64, bool, error) {
	query, args, err := qb.Select("MAX(tournament_id)").
		From(table).
		Where(qb.Eq("mode", string(mode))).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build max tournament query: %w", err)
	}

	var maxID sql.NullInt64
	if err := sqlx.GetContext(ctx, q, &maxID, query, args...); err != nil {
		return 0, false, fmt.Errorf("max tournament id table=%s mode=%s: %w", table, mode, err)
	}
	return maxID.Int64, maxID.Valid, nil
}
