package postgres

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	qb "github.com/riskibarqy/fantasy-formula/internal/platform/querybuilder"
	"github.com/stretchr/testify/require"
)

func TestLineupBaseSelectBuilder(t *testing.T) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("l.race_id", int64(3)), qb.Eq("l.championship_id", int64(1))).
		OrderBy("l.id").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT l.id, l.user_id, l.race_id, l.championship_id, l.drs_enabled, l.submitted_at, "+
		"COALESCE(array_agg(d.driver_id ORDER BY d.position) FILTER (WHERE d.driver_id IS NOT NULL), '{}') AS driver_ids "+
		"FROM user_race_lineups l LEFT JOIN user_selected_drivers d ON d.lineup_id = l.id "+
		"WHERE l.race_id = $1 AND l.championship_id = $2 GROUP BY l.id ORDER BY l.id", query)
	require.Equal(t, []any{int64(3), int64(1)}, args)
}

func TestLineupFromRow(t *testing.T) {
	submitted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := lineupFromRow(lineupTableModel{
		ID:             9,
		UserID:         2,
		RaceID:         1,
		ChampionshipID: 1,
		DRSEnabled:     true,
		SubmittedAt:    submitted,
		DriverIDs:      pq.Int64Array{4, 1, 7},
	})

	require.Equal(t, fantasy.LineupID(9), got.ID)
	require.Equal(t, []fantasy.DriverID{4, 1, 7}, got.DriverIDs, "selection order is preserved")
	require.True(t, got.DRSEnabled)
	require.Equal(t, submitted, got.SubmittedAt)
}
