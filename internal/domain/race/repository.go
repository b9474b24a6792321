package race

import (
	"context"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

// Repository exposes race, offer and result persistence.
type Repository interface {
	GetByID(ctx context.Context, raceID fantasy.RaceID) (Race, bool, error)
	ListDriverOffers(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.DriverOffer, error)
	ListResults(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.RaceResult, error)
	// ReplaceResults deletes every stored result of the race and inserts the
	// given rows in one transaction.
	ReplaceResults(ctx context.Context, raceID fantasy.RaceID, results []fantasy.RaceResult) error
}
