package cache

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	"github.com/riskibarqy/fantasy-formula/internal/domain/season"
	basecache "github.com/riskibarqy/fantasy-formula/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func seasonRulesKey(seasonID fantasy.SeasonID) string {
	return fmt.Sprintf("season:rules:%d", seasonID)
}

func (r *SeasonRepository) GetRules(ctx context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, seasonRulesKey(seasonID), func(ctx context.Context) (cachedRules, error) {
		rules, exists, err := r.next.GetRules(ctx, seasonID)
		if err != nil {
			return cachedRules{}, err
		}
		return cachedRules{value: rules, exists: exists}, nil
	})
	if err != nil {
		return fantasy.RuleSet{}, false, err
	}
	return cached.value.Clone(), cached.exists, nil
}

func (r *SeasonRepository) UpsertRules(ctx context.Context, rules fantasy.RuleSet) error {
	if err := r.next.UpsertRules(ctx, rules); err != nil {
		return err
	}
	r.cache.Delete(ctx, seasonRulesKey(rules.SeasonID))
	return nil
}

type cachedRules struct {
	value  fantasy.RuleSet
	exists bool
}

// RaceRepository caches race metadata and driver offers. Results always go to
// the underlying repository.
type RaceRepository struct {
	next  race.Repository
	cache *basecache.Store
}

func NewRaceRepository(next race.Repository, cache *basecache.Store) *RaceRepository {
	return &RaceRepository{next: next, cache: cache}
}

func (r *RaceRepository) GetByID(ctx context.Context, raceID fantasy.RaceID) (race.Race, bool, error) {
	key := fmt.Sprintf("race:%d", raceID)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedRace, error) {
		item, exists, err := r.next.GetByID(ctx, raceID)
		if err != nil {
			return cachedRace{}, err
		}
		return cachedRace{value: item, exists: exists}, nil
	})
	if err != nil {
		return race.Race{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *RaceRepository) ListDriverOffers(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.DriverOffer, error) {
	key := fmt.Sprintf("race:%d:offers", raceID)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]fantasy.DriverOffer, error) {
		items, err := r.next.ListDriverOffers(ctx, raceID)
		if err != nil {
			return nil, err
		}
		return append([]fantasy.DriverOffer(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]fantasy.DriverOffer(nil), items...), nil
}

func (r *RaceRepository) ListResults(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.RaceResult, error) {
	return r.next.ListResults(ctx, raceID)
}

func (r *RaceRepository) ReplaceResults(ctx context.Context, raceID fantasy.RaceID, results []fantasy.RaceResult) error {
	return r.next.ReplaceResults(ctx, raceID, results)
}

type cachedRace struct {
	value  race.Race
	exists bool
}
