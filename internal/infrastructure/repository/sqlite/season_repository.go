package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/season"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	query, args, err := qb.InsertModel("seasons", seasonInsertModel{
		SeasonName:     s.SeasonName,
		StartSinglesID: s.StartSinglesID,
		EndSinglesID:   s.EndSinglesID,
		StartDoublesID: s.StartDoublesID,
		EndDoublesID:   s.EndDoublesID,
	}, "")
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return season.Season{}, fmt.Errorf("insert season name=%s: %w", s.SeasonName, err)
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return season.Season{}, fmt.Errorf("read season id: %w", err)
	}
	return s, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season id=%d: %w", id, err)
	}
	return seasonFromRow(row), true, nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:             row.ID,
		SeasonName:     row.SeasonName,
		StartSinglesID: row.StartSinglesID,
		EndSinglesID:   row.EndSinglesID,
		StartDoublesID: row.StartDoublesID,
		EndDoublesID:   row.EndDoublesID,
	}
}
