package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/domain/fantasy"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	qb "github.com/riskibarqy/pool-league/internal/platform/querybuilder"
)

// FantasyRepository persists the fantasy store: leagues, rosters, matchups and guesses.
type FantasyRepository struct {
	db *sqlx.DB
}

func NewFantasyRepository(db *sqlx.DB) *FantasyRepository {
	return &FantasyRepository{db: db}
}

func (r *FantasyRepository) CreateLeague(ctx context.Context, league fantasy.League) (fantasy.League, error) {
	createdAt := timeToUnix(league.CreatedAt)
	query, args, err := qb.InsertModel("fantasy_leagues", fantasyLeagueInsertModel{
		Name:              league.Name,
		Mode:              string(league.Mode),
		StartTournamentID: league.StartTournamentID,
		Weeks:             league.Weeks,
		CreatedAt:         createdAt,
	}, "")
	if err != nil {
		return fantasy.League{}, fmt.Errorf("build insert fantasy league query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fantasy.League{}, fmt.Errorf("insert fantasy league name=%s: %w", league.Name, err)
	}
	if league.ID, err = res.LastInsertId(); err != nil {
		return fantasy.League{}, fmt.Errorf("read fantasy league id: %w", err)
	}
	league.CreatedAt = unixToTime(createdAt)
	return league, nil
}

func (r *FantasyRepository) ListLeagues(ctx context.Context) ([]fantasy.League, error) {
	query, args, err := qb.Select("*").From("fantasy_leagues").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy leagues query: %w", err)
	}

	var rows []fantasyLeagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy leagues: %w", err)
	}

	out := make([]fantasy.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}
	return out, nil
}

func (r *FantasyRepository) GetLeague(ctx context.Context, id int64) (fantasy.League, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_leagues").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return fantasy.League{}, false, fmt.Errorf("build get fantasy league query: %w", err)
	}

	var row fantasyLeagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.League{}, false, nil
		}
		return fantasy.League{}, false, fmt.Errorf("get fantasy league id=%d: %w", id, err)
	}
	return leagueFromRow(row), true, nil
}

func (r *FantasyRepository) CreateRoster(ctx context.Context, roster fantasy.Roster) error {
	query, args, err := qb.InsertModel("fantasy_rosters", fantasyRosterTableModel{
		PlayerID:          roster.PlayerID,
		LeagueID:          roster.LeagueID,
		MemberName:        roster.MemberName,
		StartTournamentID: roster.StartTournamentID,
		T8BI:              roster.T8BI,
		FPBI:              roster.FPBI,
		OPBI:              roster.OPBI,
		OBI:               roster.OBI,
		S:                 roster.S,
		GSS:               roster.GSS,
		CreatedAt:         timeToUnix(roster.CreatedAt),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert fantasy roster query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: league=%d member=%s", fantasy.ErrRosterExists, roster.LeagueID, roster.MemberName)
		}
		return fmt.Errorf("insert fantasy roster member=%s: %w", roster.MemberName, err)
	}
	return nil
}

func (r *FantasyRepository) ListRosters(ctx context.Context, leagueID int64) ([]fantasy.Roster, error) {
	query, args, err := qb.Select("*").
		From("fantasy_rosters").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("created_at", "member_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy rosters query: %w", err)
	}

	var rows []fantasyRosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy rosters league=%d: %w", leagueID, err)
	}

	out := make([]fantasy.Roster, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterFromRow(row))
	}
	return out, nil
}

func (r *FantasyRepository) GetRoster(ctx context.Context, playerID string) (fantasy.Roster, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_rosters").Where(qb.Eq("player_id", playerID)).Limit(1).ToSQL()
	if err != nil {
		return fantasy.Roster{}, false, fmt.Errorf("build get fantasy roster query: %w", err)
	}

	var row fantasyRosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Roster{}, false, nil
		}
		return fantasy.Roster{}, false, fmt.Errorf("get fantasy roster id=%s: %w", playerID, err)
	}
	return rosterFromRow(row), true, nil
}

func (r *FantasyRepository) CreateMatchups(ctx context.Context, matchups []fantasy.Matchup) ([]fantasy.Matchup, error) {
	if len(matchups) == 0 {
		return []fantasy.Matchup{}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx create fantasy matchups: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := make([]fantasy.Matchup, 0, len(matchups))
	for _, m := range matchups {
		query, args, err := qb.InsertModel("fantasy_matchups", fantasyMatchupInsertModel{
			LeagueID:     m.LeagueID,
			TournamentID: m.TournamentID,
			Team1ID:      m.Team1ID,
			Team2ID:      m.Team2ID,
			Score1:       m.Score1,
			Score2:       m.Score2,
			WinnerID:     m.WinnerID,
		}, "")
		if err != nil {
			return nil, fmt.Errorf("build insert fantasy matchup query: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("insert fantasy matchup tournament=%d: %w", m.TournamentID, err)
		}
		if m.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("read fantasy matchup id: %w", err)
		}
		out = append(out, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create fantasy matchups tx: %w", err)
	}
	return out, nil
}

func (r *FantasyRepository) ListMatchups(ctx context.Context, leagueID, tournamentID int64) ([]fantasy.Matchup, error) {
	query, args, err := qb.Select("*").
		From("fantasy_matchups").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("tournament_id", tournamentID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy matchups query: %w", err)
	}

	var rows []fantasyMatchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy matchups league=%d tournament=%d: %w", leagueID, tournamentID, err)
	}

	out := make([]fantasy.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasy.Matchup{
			ID:           row.ID,
			LeagueID:     row.LeagueID,
			TournamentID: row.TournamentID,
			Team1ID:      row.Team1ID,
			Team2ID:      row.Team2ID,
			Score1:       row.Score1,
			Score2:       row.Score2,
			WinnerID:     row.WinnerID,
		})
	}
	return out, nil
}

func (r *FantasyRepository) UpdateMatchupResult(ctx context.Context, m fantasy.Matchup) error {
	query, args, err := qb.Update("fantasy_matchups").
		Set("score1", m.Score1).
		Set("score2", m.Score2).
		Set("winner_id", m.WinnerID).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fantasy matchup query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fantasy matchup id=%d: %w", m.ID, err)
	}
	return nil
}

func (r *FantasyRepository) UpsertGuess(ctx context.Context, guess fantasy.Guess) error {
	query, args, err := qb.InsertModel("fantasy_guesses", fantasyGuessTableModel{
		PlayerID:     guess.PlayerID,
		LeagueID:     guess.LeagueID,
		TournamentID: guess.TournamentID,
		Guess:        guess.Guess,
		CreatedAt:    timeToUnix(guess.CreatedAt),
	}, `ON CONFLICT (player_id, tournament_id) DO UPDATE SET guess = excluded.guess`)
	if err != nil {
		return fmt.Errorf("build upsert fantasy guess query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fantasy guess roster=%s tournament=%d: %w", guess.PlayerID, guess.TournamentID, err)
	}
	return nil
}

func (r *FantasyRepository) ListGuesses(ctx context.Context, leagueID, tournamentID int64) ([]fantasy.Guess, error) {
	query, args, err := qb.Select("*").
		From("fantasy_guesses").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("tournament_id", tournamentID),
		).
		OrderBy("created_at", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy guesses query: %w", err)
	}

	var rows []fantasyGuessTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy guesses league=%d tournament=%d: %w", leagueID, tournamentID, err)
	}

	out := make([]fantasy.Guess, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasy.Guess{
			PlayerID:     row.PlayerID,
			LeagueID:     row.LeagueID,
			TournamentID: row.TournamentID,
			Guess:        row.Guess,
			CreatedAt:    unixToTime(row.CreatedAt),
		})
	}
	return out, nil
}

func leagueFromRow(row fantasyLeagueTableModel) fantasy.League {
	return fantasy.League{
		ID:                row.ID,
		Name:              row.Name,
		Mode:              scoring.Mode(row.Mode),
		StartTournamentID: row.StartTournamentID,
		Weeks:             row.Weeks,
		CreatedAt:         unixToTime(row.CreatedAt),
	}
}

func rosterFromRow(row fantasyRosterTableModel) fantasy.Roster {
	return fantasy.Roster{
		PlayerID:          row.PlayerID,
		LeagueID:          row.LeagueID,
		MemberName:        row.MemberName,
		StartTournamentID: row.StartTournamentID,
		T8BI:              row.T8BI,
		FPBI:              row.FPBI,
		OPBI:              row.OPBI,
		OBI:               row.OBI,
		S:                 row.S,
		GSS:               row.GSS,
		CreatedAt:         unixToTime(row.CreatedAt),
	}
}

var _ fantasy.Repository = (*FantasyRepository)(nil)
