package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("p.id", "p.first_name").
		From("players p").
		LeftJoin("player_volunteers pv ON pv.player_id = p.id").
		Where(Eq("p.division_id", "div-u10"), Eq("p.season_id", "2026-spring"), IsNull("p.team_id")).
		GroupBy("p.id").
		OrderBy("p.draft_number", "p.id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT p.id, p.first_name FROM players p LEFT JOIN player_volunteers pv ON pv.player_id = p.id " +
		"WHERE p.division_id = $1 AND p.season_id = $2 AND p.team_id IS NULL GROUP BY p.id ORDER BY p.draft_number, p.id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != "div-u10" || args[1] != "2026-spring" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("draft_sessions").
		Columns("division_id", "season_id", "state").
		Values("div-u10", "2026-spring", []byte("{}")).
		Suffix("ON CONFLICT (division_id, season_id) DO UPDATE SET state = EXCLUDED.state").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	want := "INSERT INTO draft_sessions (division_id, season_id, state) VALUES ($1, $2, $3) " +
		"ON CONFLICT (division_id, season_id) DO UPDATE SET state = EXCLUDED.state"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected mismatched values to fail")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("team_id", "team-red").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "p-alice"), Expr("team_id IS DISTINCT FROM ?", "team-red")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	want := "UPDATE players SET team_id = $1, updated_at = NOW() WHERE id = $2 AND team_id IS DISTINCT FROM $3"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 || args[0] != "team-red" || args[1] != "p-alice" || args[2] != "team-red" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := Update("players").Set("team_id", nil).ToSQL(); err == nil {
		t.Fatalf("expected update without where to fail")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("draft_commit_checkpoints").
		Where(Eq("division_id", "div-u10"), Eq("season_id", "2026-spring")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	want := "DELETE FROM draft_commit_checkpoints WHERE division_id = $1 AND season_id = $2"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("draft_sessions").ToSQL(); err == nil {
		t.Fatalf("expected delete without where to fail")
	}
}
