package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) Create(ctx context.Context, m matchup.Matchup) (matchup.Matchup, error) {
	insertModel := matchupInsertModel{
		Player1:      m.Player1,
		Player2:      m.Player2,
		Winner:       m.Winner,
		BallsWon:     m.BallsWon,
		Overtime:     m.Overtime,
		Mode:         string(m.Mode),
		TournamentID: m.TournamentID,
		CreatedAt:    timeToUnix(m.CreatedAt),
	}
	query, args, err := qb.InsertModel("matchups", insertModel, "")
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("build insert matchup query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("insert matchup: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("read matchup id: %w", err)
	}

	m.ID = id
	m.CreatedAt = unixToTime(insertModel.CreatedAt)
	return m, nil
}

func (r *MatchupRepository) ListByMode(ctx context.Context, mode scoring.Mode, rng *scoring.TournamentRange) ([]matchup.Matchup, error) {
	query, args, err := qb.Select("*").
		From("matchups").
		Where(
			qb.Eq("mode", string(mode)),
			rangeCondition("tournament_id", rng),
		).
		OrderBy("tournament_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matchups query: %w", err)
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matchups mode=%s: %w", mode, err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Matchup{
			ID:           row.ID,
			Player1:      row.Player1,
			Player2:      row.Player2,
			Winner:       row.Winner,
			BallsWon:     row.BallsWon,
			Overtime:     row.Overtime,
			Mode:         scoring.Mode(row.Mode),
			TournamentID: row.TournamentID,
			CreatedAt:    unixToTime(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *MatchupRepository) MaxTournamentID(ctx context.Context, mode scoring.Mode) (int64, bool, error) {
	return maxTournamentID(ctx, r.db, "matchups", mode)
}
