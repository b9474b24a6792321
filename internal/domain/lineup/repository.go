package lineup

import (
	"context"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

// Repository exposes lineup persistence operations.
type Repository interface {
	GetByUserAndRace(ctx context.Context, userID fantasy.UserID, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) (Lineup, bool, error)
	ListByRace(ctx context.Context, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) ([]Lineup, error)
	ListRaceIDs(ctx context.Context, championshipID fantasy.ChampionshipID) ([]fantasy.RaceID, error)
	// Upsert validates and replaces the selection atomically. Nothing is
	// written when validate returns an error.
	Upsert(ctx context.Context, input UpsertInput, validate SelectionValidator) (Lineup, fantasy.ValidatedSelection, error)
}
