package sqlite

import "database/sql"

type actionInsertModel struct {
	PlayerName   string `db:"player_name"`
	ActionType   string `db:"action_type"`
	ActionCount  int64  `db:"action_count"`
	Mode         string `db:"mode"`
	TournamentID int64  `db:"tournament_id"`
	CreatedAt    int64  `db:"created_at"`
}

type tallyRowModel struct {
	PlayerName   string `db:"player_name"`
	TournamentID int64  `db:"tournament_id"`
	ActionType   string `db:"action_type"`
	Count        int64  `db:"count"`
}

type matchupTableModel struct {
	ID           int64  `db:"id"`
	Player1      string `db:"player1"`
	Player2      string `db:"player2"`
	Winner       string `db:"winner"`
	BallsWon     int    `db:"balls_won"`
	Overtime     bool   `db:"overtime"`
	Mode         string `db:"mode"`
	TournamentID int64  `db:"tournament_id"`
	CreatedAt    int64  `db:"created_at"`
}

type matchupInsertModel struct {
	Player1      string `db:"player1"`
	Player2      string `db:"player2"`
	Winner       string `db:"winner"`
	BallsWon     int    `db:"balls_won"`
	Overtime     bool   `db:"overtime"`
	Mode         string `db:"mode"`
	TournamentID int64  `db:"tournament_id"`
	CreatedAt    int64  `db:"created_at"`
}

type seasonTableModel struct {
	ID             int64  `db:"id"`
	SeasonName     string `db:"season_name"`
	StartSinglesID int64  `db:"start_singles_id"`
	EndSinglesID   int64  `db:"end_singles_id"`
	StartDoublesID int64  `db:"start_doubles_id"`
	EndDoublesID   int64  `db:"end_doubles_id"`
}

type seasonInsertModel struct {
	SeasonName     string `db:"season_name"`
	StartSinglesID int64  `db:"start_singles_id"`
	EndSinglesID   int64  `db:"end_singles_id"`
	StartDoublesID int64  `db:"start_doubles_id"`
	EndDoublesID   int64  `db:"end_doubles_id"`
}

type standingRowModel struct {
	PlayerName   string `db:"player_name"`
	Standing     int    `db:"standing"`
	Mode         string `db:"mode"`
	TournamentID int64  `db:"tournament_id"`
}

type playerGamesInsertModel struct {
	PlayerName  string `db:"player_name"`
	Mode        string `db:"mode"`
	Tournaments int64  `db:"tournaments"`
}

type playerTournamentGamesInsertModel struct {
	PlayerName string `db:"player_name"`
	Mode       string `db:"mode"`
	Games      int64  `db:"games"`
}

type gameLogInsertModel struct {
	PlayerName   string `db:"player_name"`
	Mode         string `db:"mode"`
	TournamentID int64  `db:"tournament_id"`
	Games        int64  `db:"games"`
}

type gamesPlayedRowModel struct {
	PlayerName  string        `db:"player_name"`
	Mode        string        `db:"mode"`
	Tournaments int64         `db:"tournaments"`
	Games       sql.NullInt64 `db:"games"`
}

type awardTableModel struct {
	PlayerName        string `db:"player_name"`
	AllStarSelections int    `db:"all_star_selections"`
	AllNpa1Selections int    `db:"all_npa1_selections"`
	AllNpa2Selections int    `db:"all_npa2_selections"`
	AllNpa3Selections int    `db:"all_npa3_selections"`
	AllStarSeasons    string `db:"all_star_seasons"`
	AllNpaSeasons     string `db:"all_npa_seasons"`
}
