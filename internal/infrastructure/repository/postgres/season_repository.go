package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	qb "github.com/riskibarqy/fantasy-formula/internal/platform/querybuilder"
	"github.com/shopspring/decimal"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetRules(ctx context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, bool, error) {
	query, args, err := qb.Select(
		"season_id",
		"version",
		"finance_budget",
		"max_roster_size",
		"driver_finish_points::text AS driver_finish_points",
		"fastest_lap_bonus",
		"dnf_penalty",
		"ranking_points_table::text AS ranking_points_table",
		"updated_at",
	).
		From("season_rules").
		Where(qb.Eq("season_id", int64(seasonID))).
		ToSQL()
	if err != nil {
		return fantasy.RuleSet{}, false, fmt.Errorf("build get season rules query: %w", err)
	}

	var row seasonRulesTableModel
	err = retryOnPooledStatement(func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return fantasy.RuleSet{}, false, nil
		}
		return fantasy.RuleSet{}, false, crerr.Wrapf(err, "get season rules season_id=%d", seasonID)
	}

	rules, err := ruleSetFromRow(row)
	if err != nil {
		return fantasy.RuleSet{}, false, err
	}
	return rules, true, nil
}

func (r *SeasonRepository) UpsertRules(ctx context.Context, rules fantasy.RuleSet) error {
	finishPoints, err := encodeDecimalTable(rules.DriverFinishPoints)
	if err != nil {
		return fmt.Errorf("encode driver finish points: %w", err)
	}
	rankingPoints, err := encodeDecimalTable(rules.RankingPointsTable)
	if err != nil {
		return fmt.Errorf("encode ranking points table: %w", err)
	}

	query, args, err := qb.InsertModel("season_rules", seasonRulesInsertModel{
		SeasonID:           int64(rules.SeasonID),
		Version:            rules.Version,
		FinanceBudget:      rules.FinanceBudget,
		MaxRosterSize:      rules.MaxRosterSize,
		DriverFinishPoints: finishPoints,
		FastestLapBonus:    rules.FastestLapBonus,
		DNFPenalty:         rules.DNFPenalty,
		RankingPointsTable: rankingPoints,
	}, `ON CONFLICT (season_id)
DO UPDATE SET
    version = EXCLUDED.version,
    finance_budget = EXCLUDED.finance_budget,
    max_roster_size = EXCLUDED.max_roster_size,
    driver_finish_points = EXCLUDED.driver_finish_points,
    fastest_lap_bonus = EXCLUDED.fastest_lap_bonus,
    dnf_penalty = EXCLUDED.dnf_penalty,
    ranking_points_table = EXCLUDED.ranking_points_table,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert season rules query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert season rules season_id=%d", rules.SeasonID)
	}
	return nil
}

func ruleSetFromRow(row seasonRulesTableModel) (fantasy.RuleSet, error) {
	finishPoints, err := decodeDecimalTable(row.DriverFinishPoints)
	if err != nil {
		return fantasy.RuleSet{}, crerr.Wrapf(err, "decode driver_finish_points season_id=%d", row.SeasonID)
	}
	rankingPoints, err := decodeDecimalTable(row.RankingPointsTable)
	if err != nil {
		return fantasy.RuleSet{}, crerr.Wrapf(err, "decode ranking_points_table season_id=%d", row.SeasonID)
	}

	return fantasy.RuleSet{
		SeasonID:           fantasy.SeasonID(row.SeasonID),
		Version:            row.Version,
		FinanceBudget:      row.FinanceBudget,
		MaxRosterSize:      row.MaxRosterSize,
		DriverFinishPoints: finishPoints,
		FastestLapBonus:    row.FastestLapBonus,
		DNFPenalty:         row.DNFPenalty,
		RankingPointsTable: rankingPoints,
	}.WithDefaults(), nil
}

// Point tables are stored as JSON arrays of decimal strings so that no
// precision is lost through float parsing.
func encodeDecimalTable(values []decimal.Decimal) (string, error) {
	raw := make([]string, 0, len(values))
	for _, v := range values {
		raw = append(raw, v.String())
	}
	encoded, err := sonic.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// decodeDecimalTable also accepts plain JSON numbers written by hand.
func decodeDecimalTable(raw string) ([]decimal.Decimal, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var items []any
	if err := sonic.UnmarshalString(raw, &items); err != nil {
		return nil, err
	}

	out := make([]decimal.Decimal, 0, len(items))
	for i, item := range items {
		var (
			value decimal.Decimal
			err   error
		)
		switch v := item.(type) {
		case string:
			value, err = decimal.NewFromString(v)
		case float64:
			value = decimal.NewFromFloat(v)
		default:
			err = fmt.Errorf("unsupported value %T", item)
		}
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, value)
	}
	return out, nil
}
