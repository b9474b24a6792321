package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

type seasonRulesTableModel struct {
	SeasonID           int64           `db:"season_id"`
	Version            int             `db:"version"`
	FinanceBudget      decimal.Decimal `db:"finance_budget"`
	MaxRosterSize      int             `db:"max_roster_size"`
	DriverFinishPoints string          `db:"driver_finish_points"`
	FastestLapBonus    decimal.Decimal `db:"fastest_lap_bonus"`
	DNFPenalty         decimal.Decimal `db:"dnf_penalty"`
	RankingPointsTable string          `db:"ranking_points_table"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type seasonRulesInsertModel struct {
	SeasonID           int64           `db:"season_id"`
	Version            int             `db:"version"`
	FinanceBudget      decimal.Decimal `db:"finance_budget"`
	MaxRosterSize      int             `db:"max_roster_size"`
	DriverFinishPoints string          `db:"driver_finish_points"`
	FastestLapBonus    decimal.Decimal `db:"fastest_lap_bonus"`
	DNFPenalty         decimal.Decimal `db:"dnf_penalty"`
	RankingPointsTable string          `db:"ranking_points_table"`
}
