package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
)

type offerLister interface {
	ListDriverOffers(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.DriverOffer, error)
}

type lineupKey struct {
	userID         fantasy.UserID
	raceID         fantasy.RaceID
	championshipID fantasy.ChampionshipID
}

type LineupRepository struct {
	mu     sync.Mutex
	offers offerLister
	items  map[lineupKey]lineup.Lineup
	nextID fantasy.LineupID
}

func NewLineupRepository(offers offerLister, seed []lineup.Lineup) *LineupRepository {
	r := &LineupRepository{
		offers: offers,
		items:  make(map[lineupKey]lineup.Lineup, len(seed)),
	}
	for _, item := range seed {
		r.items[keyOf(item.UserID, item.RaceID, item.ChampionshipID)] = cloneLineup(item)
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *LineupRepository) GetByUserAndRace(_ context.Context, userID fantasy.UserID, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) (lineup.Lineup, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[keyOf(userID, raceID, championshipID)]
	if !ok {
		return lineup.Lineup{}, false, nil
	}
	return cloneLineup(item), true, nil
}

func (r *LineupRepository) ListByRace(_ context.Context, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) ([]lineup.Lineup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]lineup.Lineup, 0)
	for key, item := range r.items {
		if key.raceID == raceID && key.championshipID == championshipID {
			out = append(out, cloneLineup(item))
		}
	}
	slices.SortFunc(out, func(a, b lineup.Lineup) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *LineupRepository) ListRaceIDs(_ context.Context, championshipID fantasy.ChampionshipID) ([]fantasy.RaceID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[fantasy.RaceID]struct{})
	for key := range r.items {
		if key.championshipID == championshipID {
			seen[key.raceID] = struct{}{}
		}
	}
	out := make([]fantasy.RaceID, 0, len(seen))
	for raceID := range seen {
		out = append(out, raceID)
	}
	slices.Sort(out)
	return out, nil
}

// Upsert holds the repository lock across validation and write so concurrent
// saves for the same key are serialized.
func (r *LineupRepository) Upsert(ctx context.Context, input lineup.UpsertInput, validate lineup.SelectionValidator) (lineup.Lineup, fantasy.ValidatedSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offers, err := r.offers.ListDriverOffers(ctx, input.RaceID)
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, fmt.Errorf("list driver offers: %w", err)
	}
	selection, err := validate(offers)
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, err
	}

	key := keyOf(input.UserID, input.RaceID, input.ChampionshipID)
	item, exists := r.items[key]
	if !exists {
		r.nextID++
		item = lineup.Lineup{
			ID:             r.nextID,
			UserID:         input.UserID,
			RaceID:         input.RaceID,
			ChampionshipID: input.ChampionshipID,
		}
	}
	item.DriverIDs = append([]fantasy.DriverID(nil), selection.DriverIDs...)
	item.DRSEnabled = input.DRSEnabled
	item.SubmittedAt = input.SubmittedAt
	r.items[key] = item

	return cloneLineup(item), selection, nil
}

func keyOf(userID fantasy.UserID, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) lineupKey {
	return lineupKey{userID: userID, raceID: raceID, championshipID: championshipID}
}

func cloneLineup(item lineup.Lineup) lineup.Lineup {
	copied := item
	copied.DriverIDs = append([]fantasy.DriverID(nil), item.DriverIDs...)
	return copied
}
