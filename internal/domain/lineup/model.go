package lineup

import (
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

// Lineup is one user's driver selection for a race inside a championship.
// Points and cost are derived on read and never stored here.
type Lineup struct {
	ID             fantasy.LineupID
	UserID         fantasy.UserID
	RaceID         fantasy.RaceID
	ChampionshipID fantasy.ChampionshipID
	DriverIDs      []fantasy.DriverID
	DRSEnabled     bool
	SubmittedAt    time.Time
}

// UpsertInput is a lineup submission. SubmittedAt is refreshed on every save.
type UpsertInput struct {
	UserID         fantasy.UserID
	RaceID         fantasy.RaceID
	ChampionshipID fantasy.ChampionshipID
	DriverIDs      []fantasy.DriverID
	DRSEnabled     bool
	SubmittedAt    time.Time
}

// SelectionValidator validates a submission against the offers read in the
// same transaction as the write.
type SelectionValidator func(offers []fantasy.DriverOffer) (fantasy.ValidatedSelection, error)
