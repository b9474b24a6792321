package postgres

import (
	"time"

	"github.com/lib/pq"
)

type lineupTableModel struct {
	ID             int64         `db:"id"`
	UserID         int64         `db:"user_id"`
	RaceID         int64         `db:"race_id"`
	ChampionshipID int64         `db:"championship_id"`
	DRSEnabled     bool          `db:"drs_enabled"`
	SubmittedAt    time.Time     `db:"submitted_at"`
	DriverIDs      pq.Int64Array `db:"driver_ids"`
}

type lineupInsertModel struct {
	UserID         int64     `db:"user_id"`
	RaceID         int64     `db:"race_id"`
	ChampionshipID int64     `db:"championship_id"`
	DRSEnabled     bool      `db:"drs_enabled"`
	SubmittedAt    time.Time `db:"submitted_at"`
}

type selectedDriverInsertModel struct {
	LineupID int64 `db:"lineup_id"`
	DriverID int64 `db:"driver_id"`
	Position int   `db:"position"`
}
