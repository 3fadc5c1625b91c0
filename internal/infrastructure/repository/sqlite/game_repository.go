package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

// GameRepository owns the multi-table end-game write.
type GameRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db, now: time.Now}
}

func (r *GameRepository) NextTournamentID(ctx context.Context, mode scoring.Mode) (int64, error) {
	return nextTournamentID(ctx, r.db, mode)
}

func (r *GameRepository) OpenTournamentID(ctx context.Context, mode scoring.Mode) (int64, error) {
	actionsMax, found, err := maxTournamentID(ctx, r.db, "player_actions", mode)
	if err != nil {
		return 0, err
	}
	return game.NextTournamentID(actionsMax, found), nil
}

func nextTournamentID(ctx context.Context, q sqlx.QueryerContext, mode scoring.Mode) (int64, error) {
	actionsMax, actionsFound, err := maxTournamentID(ctx, q, "player_actions", mode)
	if err != nil {
		return 0, err
	}
	matchupsMax, matchupsFound, err := maxTournamentID(ctx, q, "matchups", mode)
	if err != nil {
		return 0, err
	}

	maxID, found := actionsMax, actionsFound
	if matchupsFound && (!found || matchupsMax > maxID) {
		maxID, found = matchupsMax, true
	}
	return game.NextTournamentID(maxID, found), nil
}

// RecordEndGame resolves the tournament id and writes actions, standings and game counters
// in one transaction. g must already be validated.
func (r *GameRepository) RecordEndGame(ctx context.Context, g game.EndGame) (game.Result, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return game.Result{}, fmt.Errorf("begin tx end game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	next, err := nextTournamentID(ctx, tx, g.Mode)
	if err != nil {
		return game.Result{}, err
	}
	tournamentID := game.EndGameTournamentID(next)
	mode := string(g.Mode)

	if len(g.Actions) > 0 {
		createdAt := r.now().UTC().Unix()
		rows := make([]actionInsertModel, 0, len(g.Actions))
		for _, a := range g.Actions {
			rows = append(rows, actionInsertModel{
				PlayerName:   a.PlayerName,
				ActionType:   string(a.ActionType),
				ActionCount:  a.ActionCount,
				Mode:         mode,
				TournamentID: tournamentID,
				CreatedAt:    createdAt,
			})
		}
		if err := execInsertModels(ctx, tx, "player_actions", rows, ""); err != nil {
			return game.Result{}, fmt.Errorf("insert actions tournament=%d: %w", tournamentID, err)
		}
	}

	if len(g.Standings) > 0 {
		rows := make([]standingRowModel, 0, len(g.Standings))
		for _, s := range g.Standings {
			rows = append(rows, standingRowModel{
				PlayerName:   s.PlayerName,
				Standing:     s.Standing,
				Mode:         mode,
				TournamentID: tournamentID,
			})
		}
		suffix := `ON CONFLICT (player_name, mode, tournament_id) DO UPDATE SET standing = excluded.standing`
		if err := execInsertModels(ctx, tx, "standings", rows, suffix); err != nil {
			return game.Result{}, fmt.Errorf("upsert standings tournament=%d: %w", tournamentID, err)
		}
	}

	if len(g.GamesPlayed) > 0 {
		tournaments := make([]playerGamesInsertModel, 0, len(g.GamesPlayed))
		games := make([]playerTournamentGamesInsertModel, 0, len(g.GamesPlayed))
		logRows := make([]gameLogInsertModel, 0, len(g.GamesPlayed))
		for _, gp := range g.GamesPlayed {
			tournaments = append(tournaments, playerGamesInsertModel{PlayerName: gp.PlayerName, Mode: mode, Tournaments: 1})
			games = append(games, playerTournamentGamesInsertModel{PlayerName: gp.PlayerName, Mode: mode, Games: gp.Games})
			logRows = append(logRows, gameLogInsertModel{PlayerName: gp.PlayerName, Mode: mode, TournamentID: tournamentID, Games: gp.Games})
		}

		if err := execInsertModels(ctx, tx, "player_games", tournaments,
			`ON CONFLICT (player_name, mode) DO UPDATE SET tournaments = player_games.tournaments + excluded.tournaments`); err != nil {
			return game.Result{}, fmt.Errorf("increment player tournaments: %w", err)
		}
		if err := execInsertModels(ctx, tx, "player_tournament_games", games,
			`ON CONFLICT (player_name, mode) DO UPDATE SET games = player_tournament_games.games + excluded.games`); err != nil {
			return game.Result{}, fmt.Errorf("increment player games: %w", err)
		}
		if err := execInsertModels(ctx, tx, "player_tournament_game_log", logRows,
			`ON CONFLICT (player_name, mode, tournament_id) DO UPDATE SET games = player_tournament_game_log.games + excluded.games`); err != nil {
			return game.Result{}, fmt.Errorf("append game log tournament=%d: %w", tournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return game.Result{}, fmt.Errorf("commit end game tx: %w", err)
	}

	return game.Result{
		Mode:             g.Mode,
		TournamentID:     tournamentID,
		ActionsWritten:   len(g.Actions),
		StandingsWritten: len(g.Standings),
	}, nil
}

func execInsertModels[T any](ctx context.Context, tx *sqlx.Tx, table string, rows []T, suffix string) error {
	query, args, err := qb.InsertModels(table, rows, suffix)
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}
