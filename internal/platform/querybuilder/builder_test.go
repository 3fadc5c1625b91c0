package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_name", "SUM(action_count) AS total").
		From("player_actions").
		Where(Eq("mode", "singles"), Between("tournament_id", 5, 10), nil).
		GroupBy("player_name").
		OrderBy("player_name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_name, SUM(action_count) AS total FROM player_actions WHERE mode = ? AND tournament_id BETWEEN ? AND ? GROUP BY player_name ORDER BY player_name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "singles" || args[1] != 5 || args[2] != 10 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("*").From("seasons").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM seasons WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("standings").
		Columns("player_name", "standing").
		Values("Ana", 1).
		Values("Ben", 2).
		Suffix("ON CONFLICT (player_name) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO standings (player_name, standing) VALUES (?, ?), (?, ?) ON CONFLICT (player_name) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "Ana" || args[3] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("player_games").
		Set("games", 5).
		Set("mode", "doubles").
		Where(Eq("player_name", "Ana")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE player_games SET games = ?, mode = ? WHERE player_name = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 5 || args[1] != "doubles" || args[2] != "Ana" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		Name  string `db:"player_name"`
		Count int    `db:"action_count"`
		skip  int
	}

	query, args, err := InsertModels("player_actions", []row{{Name: "Ana", Count: 2}, {Name: "Ben", Count: 1}}, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO player_actions (player_name, action_count) VALUES (?, ?), (?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[row]("player_actions", nil, ""); err == nil {
		t.Fatalf("expected error for empty models")
	}
}
