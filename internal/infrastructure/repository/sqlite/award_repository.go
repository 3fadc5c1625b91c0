package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/award"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

type AwardRepository struct {
	db *sqlx.DB
}

func NewAwardRepository(db *sqlx.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) List(ctx context.Context) ([]award.Award, error) {
	query, args, err := qb.Select("*").From("awards").OrderBy("player_name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list awards query: %w", err)
	}

	var rows []awardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}

	out := make([]award.Award, 0, len(rows))
	for _, row := range rows {
		out = append(out, awardFromRow(row))
	}
	return out, nil
}

func (r *AwardRepository) Apply(ctx context.Context, playerName string, fn func(award.Award) (award.Award, error)) (award.Award, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return award.Award{}, fmt.Errorf("begin tx apply award: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Select("*").From("awards").Where(qb.Eq("player_name", playerName)).Limit(1).ToSQL()
	if err != nil {
		return award.Award{}, fmt.Errorf("build get award query: %w", err)
	}

	current := award.Award{PlayerName: playerName}
	var row awardTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if !isNotFound(err) {
			return award.Award{}, fmt.Errorf("get award player=%s: %w", playerName, err)
		}
	} else {
		current = awardFromRow(row)
	}

	updated, err := fn(current)
	if err != nil {
		return award.Award{}, err
	}
	updated.PlayerName = playerName

	upsert, upsertArgs, err := qb.InsertModel("awards", awardTableModel{
		PlayerName:        updated.PlayerName,
		AllStarSelections: updated.AllStarSelections,
		AllNpa1Selections: updated.AllNpa1Selections,
		AllNpa2Selections: updated.AllNpa2Selections,
		AllNpa3Selections: updated.AllNpa3Selections,
		AllStarSeasons:    updated.AllStarSeasons,
		AllNpaSeasons:     updated.AllNpaSeasons,
	}, `ON CONFLICT (player_name) DO UPDATE SET
    all_star_selections = excluded.all_star_selections,
    all_npa1_selections = excluded.all_npa1_selections,
    all_npa2_selections = excluded.all_npa2_selections,
    all_npa3_selections = excluded.all_npa3_selections,
    all_star_seasons = excluded.all_star_seasons,
    all_npa_seasons = excluded.all_npa_seasons`)
	if err != nil {
		return award.Award{}, fmt.Errorf("build upsert award query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, upsertArgs...); err != nil {
		return award.Award{}, fmt.Errorf("upsert award player=%s: %w", playerName, err)
	}

	if err := tx.Commit(); err != nil {
		return award.Award{}, fmt.Errorf("commit apply award tx: %w", err)
	}
	return updated, nil
}

func awardFromRow(row awardTableModel) award.Award {
	return award.Award{
		PlayerName:        row.PlayerName,
		AllStarSelections: row.AllStarSelections,
		AllNpa1Selections: row.AllNpa1Selections,
		AllNpa2Selections: row.AllNpa2Selections,
		AllNpa3Selections: row.AllNpa3Selections,
		AllStarSeasons:    row.AllStarSeasons,
		AllNpaSeasons:     row.AllNpaSeasons,
	}
}
