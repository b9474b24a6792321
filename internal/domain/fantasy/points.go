package fantasy

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// RaceResult is one classified (or unclassified) driver row for a race.
// A nil FinishPosition means the driver was not classified.
type RaceResult struct {
	RaceID           RaceID
	DriverID         DriverID
	FinishPosition   *int
	StartingPosition *int
	FastestLap       bool
	DNF              bool
	DNS              bool
}

// DriverPoints maps a driver to the points earned in one race. Drivers without
// a result row are absent and score zero.
type DriverPoints map[DriverID]decimal.Decimal

func (p DriverPoints) Of(driverID DriverID) decimal.Decimal {
	if v, ok := p[driverID]; ok {
		return v
	}
	return decimal.Zero
}

type DriverScore struct {
	DriverID DriverID
	Base     decimal.Decimal
	Bonus    decimal.Decimal
	Penalty  decimal.Decimal
	Total    decimal.Decimal
}

// ScoreDriver applies the finish table, fastest lap bonus and DNF penalty
// independently of each other.
func ScoreDriver(rules RuleSet, result RaceResult) DriverScore {
	out := DriverScore{
		DriverID: result.DriverID,
		Base:     decimal.Zero,
		Bonus:    decimal.Zero,
		Penalty:  decimal.Zero,
	}
	if pos := result.FinishPosition; pos != nil && *pos >= 1 && *pos <= len(rules.DriverFinishPoints) {
		out.Base = rules.DriverFinishPoints[*pos-1]
	}
	if result.FastestLap {
		out.Bonus = rules.FastestLapBonus
	}
	if result.DNF {
		out.Penalty = rules.DNFPenalty
	}
	out.Total = out.Base.Add(out.Bonus).Sub(out.Penalty)
	return out
}

// CalculateDriverPoints scores every result row of one race. When a driver has
// more than one row the last one wins.
func CalculateDriverPoints(rules RuleSet, results []RaceResult) DriverPoints {
	out := make(DriverPoints, len(results))
	for _, result := range results {
		out[result.DriverID] = ScoreDriver(rules, result).Total
	}
	return out
}

// BreakdownDriverPoints returns per-driver scores ordered by total desc, then driver id.
func BreakdownDriverPoints(rules RuleSet, results []RaceResult) []DriverScore {
	byDriver := make(map[DriverID]DriverScore, len(results))
	for _, result := range results {
		byDriver[result.DriverID] = ScoreDriver(rules, result)
	}

	out := make([]DriverScore, 0, len(byDriver))
	for _, score := range byDriver {
		out = append(out, score)
	}
	slices.SortFunc(out, func(a, b DriverScore) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.DriverID, b.DriverID)
	})
	return out
}
