package championship

import (
	"context"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

// Repository exposes championship membership reads.
type Repository interface {
	GetByID(ctx context.Context, championshipID fantasy.ChampionshipID) (Championship, bool, error)
	ListParticipants(ctx context.Context, championshipID fantasy.ChampionshipID) ([]Participant, error)
	ListByUser(ctx context.Context, userID fantasy.UserID) ([]Championship, error)
	IsAdmin(ctx context.Context, championshipID fantasy.ChampionshipID, userID fantasy.UserID) (bool, error)
}
