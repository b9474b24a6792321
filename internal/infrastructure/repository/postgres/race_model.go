package postgres

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type raceTableModel struct {
	ID             int64               `db:"id"`
	SeasonID       int64               `db:"season_id"`
	Name           string              `db:"name"`
	Round          int                 `db:"round"`
	RaceDate       time.Time           `db:"race_date"`
	BudgetOverride decimal.NullDecimal `db:"budget_override"`
}

type raceDriverTableModel struct {
	RaceID        int64           `db:"race_id"`
	DriverID      int64           `db:"driver_id"`
	ConstructorID int64           `db:"constructor_id"`
	Price         decimal.Decimal `db:"price"`
}

type raceResultTableModel struct {
	RaceID           int64         `db:"race_id"`
	DriverID         int64         `db:"driver_id"`
	FinishPosition   sql.NullInt32 `db:"finish_position"`
	StartingPosition sql.NullInt32 `db:"starting_position"`
	FastestLap       bool          `db:"fastest_lap"`
	DNF              bool          `db:"dnf"`
	DNS              bool          `db:"dns"`
}
