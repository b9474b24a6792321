package fantasy

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultRuleSetVersion = 1
	DefaultMaxRosterSize  = 6
)

var (
	ErrInvalidRuleSet = crerr.New("invalid rule set")
	ErrRulesNotFound  = crerr.New("season rules not found")
)

var (
	defaultFinanceBudget      = decimal.NewFromInt(250)
	defaultDriverFinishPoints = []int64{150, 125, 100, 90, 80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30, 25, 20, 15, 10, 5}
	defaultRankingPoints      = []int64{25, 18, 14, 10, 6, 3, 1}
)

// RuleSet is the season scoped scoring configuration. Index 0 of both point
// tables is 1st place.
type RuleSet struct {
	SeasonID           SeasonID
	Version            int
	FinanceBudget      decimal.Decimal
	MaxRosterSize      int
	DriverFinishPoints []decimal.Decimal
	FastestLapBonus    decimal.Decimal
	DNFPenalty         decimal.Decimal
	RankingPointsTable []decimal.Decimal
	IsDefault          bool
}

func DefaultRuleSet(seasonID SeasonID) RuleSet {
	return RuleSet{
		SeasonID:           seasonID,
		Version:            DefaultRuleSetVersion,
		FinanceBudget:      defaultFinanceBudget,
		MaxRosterSize:      DefaultMaxRosterSize,
		DriverFinishPoints: DecimalTable(defaultDriverFinishPoints...),
		FastestLapBonus:    decimal.Zero,
		DNFPenalty:         decimal.Zero,
		RankingPointsTable: DecimalTable(defaultRankingPoints...),
		IsDefault:          true,
	}
}

// WithDefaults fills every unset field from DefaultRuleSet. Bonus and penalty
// are kept as stored since zero is a meaningful configuration for both.
func (r RuleSet) WithDefaults() RuleSet {
	defaults := DefaultRuleSet(r.SeasonID)
	out := r.Clone()
	if out.Version < 1 {
		out.Version = defaults.Version
	}
	if !out.FinanceBudget.IsPositive() {
		out.FinanceBudget = defaults.FinanceBudget
	}
	if out.MaxRosterSize < 1 {
		out.MaxRosterSize = defaults.MaxRosterSize
	}
	if len(out.DriverFinishPoints) == 0 {
		out.DriverFinishPoints = defaults.DriverFinishPoints
	}
	if len(out.RankingPointsTable) == 0 {
		out.RankingPointsTable = defaults.RankingPointsTable
	}
	return out
}

func (r RuleSet) Validate() error {
	if !r.FinanceBudget.IsPositive() {
		return fmt.Errorf("%w: finance budget must be greater than zero", ErrInvalidRuleSet)
	}
	if r.MaxRosterSize < 1 {
		return fmt.Errorf("%w: max roster size must be >= 1", ErrInvalidRuleSet)
	}
	if r.FastestLapBonus.IsNegative() {
		return fmt.Errorf("%w: fastest lap bonus must be >= 0", ErrInvalidRuleSet)
	}
	if r.DNFPenalty.IsNegative() {
		return fmt.Errorf("%w: dnf penalty must be >= 0", ErrInvalidRuleSet)
	}
	if err := validateTable("driver finish points", r.DriverFinishPoints); err != nil {
		return err
	}
	if err := validateTable("ranking points", r.RankingPointsTable); err != nil {
		return err
	}
	return nil
}

// BudgetFor returns the budget that applies to one race. A positive override
// replaces the season budget.
func (r RuleSet) BudgetFor(override *decimal.Decimal) decimal.Decimal {
	if override != nil && override.IsPositive() {
		return *override
	}
	return r.FinanceBudget
}

// Clone returns a copy that shares no table storage with r.
func (r RuleSet) Clone() RuleSet {
	out := r
	out.DriverFinishPoints = append([]decimal.Decimal(nil), r.DriverFinishPoints...)
	out.RankingPointsTable = append([]decimal.Decimal(nil), r.RankingPointsTable...)
	return out
}

func validateTable(name string, table []decimal.Decimal) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: %s table is required", ErrInvalidRuleSet, name)
	}
	for i, v := range table {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s[%d] must be >= 0", ErrInvalidRuleSet, name, i)
		}
	}
	return nil
}

func DecimalTable(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.NewFromInt(v))
	}
	return out
}
