package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

type ChampionshipRepository struct {
	mu           sync.RWMutex
	items        map[fantasy.ChampionshipID]championship.Championship
	participants map[fantasy.ChampionshipID][]championship.Participant
	admins       map[fantasy.ChampionshipID]map[fantasy.UserID]struct{}
}

func NewChampionshipRepository(
	items []championship.Championship,
	participants map[fantasy.ChampionshipID][]championship.Participant,
	admins map[fantasy.ChampionshipID][]fantasy.UserID,
) *ChampionshipRepository {
	r := &ChampionshipRepository{
		items:        make(map[fantasy.ChampionshipID]championship.Championship, len(items)),
		participants: make(map[fantasy.ChampionshipID][]championship.Participant, len(participants)),
		admins:       make(map[fantasy.ChampionshipID]map[fantasy.UserID]struct{}, len(admins)),
	}
	for _, item := range items {
		r.items[item.ID] = item
	}
	for id, rows := range participants {
		r.participants[id] = append([]championship.Participant(nil), rows...)
	}
	for id, userIDs := range admins {
		set := make(map[fantasy.UserID]struct{}, len(userIDs))
		for _, userID := range userIDs {
			set[userID] = struct{}{}
		}
		r.admins[id] = set
	}
	return r
}

func (r *ChampionshipRepository) GetByID(_ context.Context, championshipID fantasy.ChampionshipID) (championship.Championship, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[championshipID]
	return item, ok, nil
}

func (r *ChampionshipRepository) ListParticipants(_ context.Context, championshipID fantasy.ChampionshipID) ([]championship.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]championship.Participant(nil), r.participants[championshipID]...)
	slices.SortFunc(out, func(a, b championship.Participant) int { return cmp.Compare(a.UserID, b.UserID) })
	return out, nil
}

func (r *ChampionshipRepository) ListByUser(_ context.Context, userID fantasy.UserID) ([]championship.Championship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]championship.Championship, 0)
	for id, rows := range r.participants {
		for _, p := range rows {
			if p.UserID == userID {
				out = append(out, r.items[id])
				break
			}
		}
	}
	slices.SortFunc(out, func(a, b championship.Championship) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *ChampionshipRepository) IsAdmin(_ context.Context, championshipID fantasy.ChampionshipID, userID fantasy.UserID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.admins[championshipID][userID]
	return ok, nil
}
