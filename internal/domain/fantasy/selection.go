package fantasy

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRosterSize = crerr.New("invalid roster size")
	ErrDuplicateDriver   = crerr.New("duplicate driver in lineup")
	ErrDriverNotOffered  = crerr.New("driver not offered for race")
	ErrBudgetExceeded    = crerr.New("budget exceeded")
)

const (
	FieldDrivers   = "drivers"
	FieldTotalCost = "total_cost"
)

// SelectionError is a rejected lineup submission. It matches its sentinel
// through errors.Is and names the request field at fault.
type SelectionError struct {
	Field   string
	Err     error
	Detail  string
	Overage decimal.Decimal
}

func (e *SelectionError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

type ValidatedSelection struct {
	DriverIDs []DriverID
	Cost      decimal.Decimal
	Budget    decimal.Decimal
	Remaining decimal.Decimal
}

// ValidateSelection checks roster size, uniqueness, availability and budget, in
// that order. A cost equal to the budget is accepted.
func ValidateSelection(budget decimal.Decimal, maxRosterSize int, driverIDs []DriverID, offers []DriverOffer) (ValidatedSelection, error) {
	if len(driverIDs) == 0 || len(driverIDs) > maxRosterSize {
		return ValidatedSelection{}, &SelectionError{
			Field:  FieldDrivers,
			Err:    ErrInvalidRosterSize,
			Detail: fmt.Sprintf("expected 1..%d drivers, got %d", maxRosterSize, len(driverIDs)),
		}
	}

	seen := make(map[DriverID]struct{}, len(driverIDs))
	for _, driverID := range driverIDs {
		if _, ok := seen[driverID]; ok {
			return ValidatedSelection{}, &SelectionError{
				Field:  FieldDrivers,
				Err:    ErrDuplicateDriver,
				Detail: fmt.Sprintf("driver_id=%d", driverID),
			}
		}
		seen[driverID] = struct{}{}
	}

	prices := IndexOffers(offers)
	cost := decimal.Zero
	for _, driverID := range driverIDs {
		price, ok := prices[driverID]
		if !ok {
			return ValidatedSelection{}, &SelectionError{
				Field:  FieldDrivers,
				Err:    ErrDriverNotOffered,
				Detail: fmt.Sprintf("driver_id=%d", driverID),
			}
		}
		cost = cost.Add(price)
	}

	if cost.GreaterThan(budget) {
		overage := cost.Sub(budget)
		return ValidatedSelection{}, &SelectionError{
			Field:   FieldTotalCost,
			Err:     ErrBudgetExceeded,
			Detail:  fmt.Sprintf("cost=%s budget=%s overage=%s", cost.String(), budget.String(), overage.String()),
			Overage: overage,
		}
	}

	return ValidatedSelection{
		DriverIDs: append([]DriverID(nil), driverIDs...),
		Cost:      cost,
		Budget:    budget,
		Remaining: budget.Sub(cost),
	}, nil
}
