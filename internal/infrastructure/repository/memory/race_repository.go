package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
)

type RaceRepository struct {
	mu      sync.RWMutex
	races   map[fantasy.RaceID]race.Race
	offers  map[fantasy.RaceID][]fantasy.DriverOffer
	results map[fantasy.RaceID][]fantasy.RaceResult
}

func NewRaceRepository(races []race.Race, offers []fantasy.DriverOffer, results []fantasy.RaceResult) *RaceRepository {
	r := &RaceRepository{
		races:   make(map[fantasy.RaceID]race.Race, len(races)),
		offers:  make(map[fantasy.RaceID][]fantasy.DriverOffer),
		results: make(map[fantasy.RaceID][]fantasy.RaceResult),
	}
	for _, item := range races {
		r.races[item.ID] = item
	}
	for _, offer := range offers {
		r.offers[offer.RaceID] = append(r.offers[offer.RaceID], offer)
	}
	for _, result := range results {
		r.results[result.RaceID] = append(r.results[result.RaceID], result)
	}
	return r
}

func (r *RaceRepository) GetByID(_ context.Context, raceID fantasy.RaceID) (race.Race, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.races[raceID]
	return item, ok, nil
}

func (r *RaceRepository) ListDriverOffers(_ context.Context, raceID fantasy.RaceID) ([]fantasy.DriverOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]fantasy.DriverOffer(nil), r.offers[raceID]...)
	slices.SortFunc(out, func(a, b fantasy.DriverOffer) int { return cmp.Compare(a.DriverID, b.DriverID) })
	return out, nil
}

func (r *RaceRepository) ListResults(_ context.Context, raceID fantasy.RaceID) ([]fantasy.RaceResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.RaceResult, 0, len(r.results[raceID]))
	for _, item := range r.results[raceID] {
		out = append(out, cloneResult(item))
	}
	return out, nil
}

func (r *RaceRepository) ReplaceResults(_ context.Context, raceID fantasy.RaceID, results []fantasy.RaceResult) error {
	rows := make([]fantasy.RaceResult, 0, len(results))
	for _, item := range results {
		item.RaceID = raceID
		rows = append(rows, cloneResult(item))
	}

	r.mu.Lock()
	r.results[raceID] = rows
	r.mu.Unlock()
	return nil
}

func cloneResult(item fantasy.RaceResult) fantasy.RaceResult {
	copied := item
	if item.FinishPosition != nil {
		v := *item.FinishPosition
		copied.FinishPosition = &v
	}
	if item.StartingPosition != nil {
		v := *item.StartingPosition
		copied.StartingPosition = &v
	}
	return copied
}
