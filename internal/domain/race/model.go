package race

import (
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/shopspring/decimal"
)

type Race struct {
	ID             fantasy.RaceID
	SeasonID       fantasy.SeasonID
	Name           string
	Round          int
	RaceDate       time.Time
	BudgetOverride *decimal.Decimal
}
