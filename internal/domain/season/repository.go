package season

import (
	"context"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

// Repository stores the versioned scoring rules of each season.
type Repository interface {
	GetRules(ctx context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, bool, error)
	UpsertRules(ctx context.Context, rules fantasy.RuleSet) error
}
