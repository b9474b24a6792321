package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	rules map[fantasy.SeasonID]fantasy.RuleSet
}

func NewSeasonRepository(rules []fantasy.RuleSet) *SeasonRepository {
	items := make(map[fantasy.SeasonID]fantasy.RuleSet, len(rules))
	for _, item := range rules {
		items[item.SeasonID] = item
	}
	return &SeasonRepository{rules: items}
}

func (r *SeasonRepository) GetRules(_ context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rules[seasonID]
	if !ok {
		return fantasy.RuleSet{}, false, nil
	}
	return item.WithDefaults(), true, nil
}

func (r *SeasonRepository) UpsertRules(_ context.Context, rules fantasy.RuleSet) error {
	r.mu.Lock()
	r.rules[rules.SeasonID] = rules.WithDefaults()
	r.mu.Unlock()
	return nil
}
