package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("races").
		Where(Eq("season_id", int64(2026)), Eq("cancelled", false)).
		OrderBy("round").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM races WHERE season_id = $1 AND cancelled = $2 ORDER BY round LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(2026) || args[1] != false {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinGroupAndLock(t *testing.T) {
	query, args, err := Select("l.id", "array_agg(d.driver_id ORDER BY d.position) AS driver_ids").
		From("user_race_lineups l").
		Join("JOIN user_selected_drivers d ON d.lineup_id = l.id").
		Where(Eq("l.race_id", int64(3)), Eq("l.championship_id", int64(1))).
		GroupBy("l.id").
		Suffix("FOR SHARE").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT l.id, array_agg(d.driver_id ORDER BY d.position) AS driver_ids FROM user_race_lineups l "+
		"JOIN user_selected_drivers d ON d.lineup_id = l.id WHERE l.race_id = $1 AND l.championship_id = $2 GROUP BY l.id FOR SHARE", query)
	require.Equal(t, []any{int64(3), int64(1)}, args)
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("id", "username").
		Values(int64(1), "marta").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (id, username) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "marta" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		RaceID   int64 `db:"race_id"`
		DriverID int64 `db:"driver_id"`
		skipped  int
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModels("race_results", []row{{RaceID: 1, DriverID: 4}, {RaceID: 1, DriverID: 7}}, "")
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO race_results (race_id, driver_id) VALUES ($1, $2), ($3, $4)", query)
	require.Equal(t, []any{int64(1), int64(4), int64(1), int64(7)}, args)

	_, _, err = InsertModels[row]("race_results", nil, "")
	require.Error(t, err)
}

func TestInsertModel_ConflictSuffix(t *testing.T) {
	type rules struct {
		SeasonID int64 `db:"season_id"`
		Version  int   `db:"version"`
	}

	query, args, err := InsertModel("season_rules", &rules{SeasonID: 2026, Version: 2},
		"ON CONFLICT (season_id) DO UPDATE SET version = EXCLUDED.version")
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO season_rules (season_id, version) VALUES ($1, $2) "+
		"ON CONFLICT (season_id) DO UPDATE SET version = EXCLUDED.version", query)
	require.Equal(t, []any{int64(2026), 2}, args)

	_, _, err = InsertModel("season_rules", (*rules)(nil), "")
	require.Error(t, err)
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("race_results").
		Where(Eq("race_id", int64(9))).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM race_results WHERE race_id = $1", query)
	require.Equal(t, []any{int64(9)}, args)

	_, _, err = DeleteFrom("race_results").ToSQL()
	require.Error(t, err, "unconditional delete must be rejected")
}
