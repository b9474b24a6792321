package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/memory"
)

var seedConstructorNames = []string{"Scuderia Rossa", "Silver Arrows", "Papaya Racing", "Bull Energy", "Emerald Works"}

var seedDrivers = []struct {
	code     string
	fullName string
}{
	{"VER", "Max Verstappen"},
	{"NOR", "Lando Norris"},
	{"LEC", "Charles Leclerc"},
	{"PIA", "Oscar Piastri"},
	{"RUS", "George Russell"},
	{"HAM", "Lewis Hamilton"},
	{"ALO", "Fernando Alonso"},
	{"SAI", "Carlos Sainz"},
	{"GAS", "Pierre Gasly"},
	{"ALB", "Alexander Albon"},
}

// BootstrapSeed loads the development data set into an empty database. It is a
// no-op once any season exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons`); err != nil {
		return fmt.Errorf("count seasons for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(what, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", what, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", what, err)
		}
		return nil
	}

	for _, p := range memory.SeedParticipants()[memory.ChampionshipPaddock] {
		if err := exec("user "+p.Username, `
INSERT INTO users (id, username, is_super_admin)
VALUES (:id, :username, :is_super_admin)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":             int64(p.UserID),
			"username":       p.Username,
			"is_super_admin": p.UserID == memory.UserIDAdmin,
		}); err != nil {
			return err
		}
	}

	if err := exec("season", `
INSERT INTO seasons (id, name, is_active)
VALUES (:id, :name, TRUE)
ON CONFLICT (id) DO NOTHING`, map[string]any{
		"id":   int64(memory.SeasonID2026),
		"name": "2026 World Championship",
	}); err != nil {
		return err
	}

	for _, rules := range memory.SeedRules() {
		finishPoints, err := encodeDecimalTable(rules.DriverFinishPoints)
		if err != nil {
			return fmt.Errorf("encode seed finish points: %w", err)
		}
		rankingPoints, err := encodeDecimalTable(rules.RankingPointsTable)
		if err != nil {
			return fmt.Errorf("encode seed ranking points: %w", err)
		}
		if err := exec("season rules", `
INSERT INTO season_rules (season_id, version, finance_budget, max_roster_size, driver_finish_points, fastest_lap_bonus, dnf_penalty, ranking_points_table)
VALUES (:season_id, :version, :finance_budget, :max_roster_size, :driver_finish_points, :fastest_lap_bonus, :dnf_penalty, :ranking_points_table)
ON CONFLICT (season_id) DO NOTHING`, map[string]any{
			"season_id":            int64(rules.SeasonID),
			"version":              rules.Version,
			"finance_budget":       rules.FinanceBudget,
			"max_roster_size":      rules.MaxRosterSize,
			"driver_finish_points": finishPoints,
			"fastest_lap_bonus":    rules.FastestLapBonus,
			"dnf_penalty":          rules.DNFPenalty,
			"ranking_points_table": rankingPoints,
		}); err != nil {
			return err
		}
	}

	for i, name := range seedConstructorNames {
		if err := exec("constructor "+name, `
INSERT INTO constructors (id, name) VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{"id": int64(i + 1), "name": name}); err != nil {
			return err
		}
	}
	for i, d := range seedDrivers {
		if err := exec("driver "+d.code, `
INSERT INTO drivers (id, code, full_name, constructor_id)
VALUES (:id, :code, :full_name, :constructor_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":             int64(i + 1),
			"code":           d.code,
			"full_name":      d.fullName,
			"constructor_id": int64(i/2 + 1),
		}); err != nil {
			return err
		}
	}

	for _, r := range memory.SeedRaces() {
		var override any
		if r.BudgetOverride != nil {
			override = *r.BudgetOverride
		}
		if err := exec("race "+r.Name, `
INSERT INTO races (id, season_id, name, round, race_date, budget_override)
VALUES (:id, :season_id, :name, :round, :race_date, :budget_override)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              int64(r.ID),
			"season_id":       int64(r.SeasonID),
			"name":            r.Name,
			"round":           r.Round,
			"race_date":       r.RaceDate.UTC(),
			"budget_override": override,
		}); err != nil {
			return err
		}
	}

	for _, o := range memory.SeedDriverOffers() {
		if err := exec("race driver", `
INSERT INTO race_drivers (race_id, driver_id, constructor_id, price)
VALUES (:race_id, :driver_id, :constructor_id, :price)
ON CONFLICT (race_id, driver_id) DO NOTHING`, map[string]any{
			"race_id":        int64(o.RaceID),
			"driver_id":      int64(o.DriverID),
			"constructor_id": int64(o.ConstructorID),
			"price":          o.Price,
		}); err != nil {
			return err
		}
	}

	for _, res := range memory.SeedResults() {
		row := raceResultTableModel{
			FinishPosition:   intPtrToNull(res.FinishPosition),
			StartingPosition: intPtrToNull(res.StartingPosition),
		}
		if err := exec("race result", `
INSERT INTO race_results (race_id, driver_id, finish_position, starting_position, fastest_lap, dnf, dns)
VALUES (:race_id, :driver_id, :finish_position, :starting_position, :fastest_lap, :dnf, :dns)
ON CONFLICT (race_id, driver_id) DO NOTHING`, map[string]any{
			"race_id":           int64(res.RaceID),
			"driver_id":         int64(res.DriverID),
			"finish_position":   row.FinishPosition,
			"starting_position": row.StartingPosition,
			"fastest_lap":       res.FastestLap,
			"dnf":               res.DNF,
			"dns":               res.DNS,
		}); err != nil {
			return err
		}
	}

	for _, c := range memory.SeedChampionships() {
		if err := exec("championship "+c.Name, `
INSERT INTO championships (id, season_id, name, is_active)
VALUES (:id, :season_id, :name, :is_active)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        int64(c.ID),
			"season_id": int64(c.SeasonID),
			"name":      c.Name,
			"is_active": c.IsActive,
		}); err != nil {
			return err
		}
	}
	for championshipID, participants := range memory.SeedParticipants() {
		for _, p := range participants {
			if err := exec("participant", `
INSERT INTO championship_participants (championship_id, user_id, joined_at)
VALUES (:championship_id, :user_id, :joined_at)
ON CONFLICT (championship_id, user_id) DO NOTHING`, map[string]any{
				"championship_id": int64(championshipID),
				"user_id":         int64(p.UserID),
				"joined_at":       p.JoinedAt.UTC(),
			}); err != nil {
				return err
			}
		}
	}
	for championshipID, admins := range memory.SeedAdmins() {
		for _, userID := range admins {
			if err := exec("championship admin", `
INSERT INTO championship_admins (championship_id, user_id)
VALUES (:championship_id, :user_id)
ON CONFLICT (championship_id, user_id) DO NOTHING`, map[string]any{
				"championship_id": int64(championshipID),
				"user_id":         int64(userID),
			}); err != nil {
				return err
			}
		}
	}

	for _, l := range memory.SeedLineups() {
		if err := exec("lineup", `
INSERT INTO user_race_lineups (id, user_id, race_id, championship_id, drs_enabled, submitted_at)
VALUES (:id, :user_id, :race_id, :championship_id, :drs_enabled, :submitted_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              int64(l.ID),
			"user_id":         int64(l.UserID),
			"race_id":         int64(l.RaceID),
			"championship_id": int64(l.ChampionshipID),
			"drs_enabled":     l.DRSEnabled,
			"submitted_at":    l.SubmittedAt.UTC(),
		}); err != nil {
			return err
		}
		for i, driverID := range l.DriverIDs {
			if err := exec("selected driver", `
INSERT INTO user_selected_drivers (lineup_id, driver_id, position)
VALUES (:lineup_id, :driver_id, :position)
ON CONFLICT (lineup_id, driver_id) DO NOTHING`, map[string]any{
				"lineup_id": int64(l.ID),
				"driver_id": int64(driverID),
				"position":  i + 1,
			}); err != nil {
				return err
			}
		}
	}

	// Explicit ids above leave the serial sequences behind.
	for _, table := range []string{"users", "constructors", "drivers", "races", "championships", "user_race_lineups"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`, table, table)); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
