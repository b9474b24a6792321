package championship

import (
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

type Championship struct {
	ID       fantasy.ChampionshipID
	SeasonID fantasy.SeasonID
	Name     string
	IsActive bool
}

type Participant struct {
	UserID   fantasy.UserID
	Username string
	JoinedAt time.Time
}
