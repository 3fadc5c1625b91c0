package sqlite

type fantasyLeagueTableModel struct {
	ID                int64  `db:"id"`
	Name              string `db:"name"`
	Mode              string `db:"mode"`
	StartTournamentID int64  `db:"start_tournament_id"`
	Weeks             int    `db:"weeks"`
	CreatedAt         int64  `db:"created_at"`
}

type fantasyLeagueInsertModel struct {
	Name              string `db:"name"`
	Mode              string `db:"mode"`
	StartTournamentID int64  `db:"start_tournament_id"`
	Weeks             int    `db:"weeks"`
	CreatedAt         int64  `db:"created_at"`
}

type fantasyRosterTableModel struct {
	PlayerID          string `db:"player_id"`
	LeagueID          int64  `db:"league_id"`
	MemberName        string `db:"member_name"`
	StartTournamentID int64  `db:"start_tournament_id"`
	T8BI              string `db:"t8bi"`
	FPBI              string `db:"fpbi"`
	OPBI              string `db:"opbi"`
	OBI               string `db:"obi"`
	S                 string `db:"s"`
	GSS               string `db:"gss"`
	CreatedAt         int64  `db:"created_at"`
}

type fantasyMatchupTableModel struct {
	ID           int64   `db:"id"`
	LeagueID     int64   `db:"league_id"`
	TournamentID int64   `db:"tournament_id"`
	Team1ID      string  `db:"team1_id"`
	Team2ID      string  `db:"team2_id"`
	Score1       float64 `db:"score1"`
	Score2       float64 `db:"score2"`
	WinnerID     string  `db:"winner_id"`
}

type fantasyMatchupInsertModel struct {
	LeagueID     int64   `db:"league_id"`
	TournamentID int64   `db:"tournament_id"`
	Team1ID      string  `db:"team1_id"`
	Team2ID      string  `db:"team2_id"`
	Score1       float64 `db:"score1"`
	Score2       float64 `db:"score2"`
	WinnerID     string  `db:"winner_id"`
}

type fantasyGuessTableModel struct {
	PlayerID     string  `db:"player_id"`
	LeagueID     int64   `db:"league_id"`
	TournamentID int64   `db:"tournament_id"`
	Guess        float64 `db:"guess"`
	CreatedAt    int64   `db:"created_at"`
}
