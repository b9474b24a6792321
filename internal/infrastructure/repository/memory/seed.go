package memory

import (
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	"github.com/shopspring/decimal"
)

const (
	SeasonID2026        fantasy.SeasonID       = 2026
	RaceIDBahrain       fantasy.RaceID         = 1
	RaceIDJeddah        fantasy.RaceID         = 2
	ChampionshipPaddock fantasy.ChampionshipID = 1
	UserIDAdmin         fantasy.UserID         = 1
	UserIDMarta         fantasy.UserID         = 2
	UserIDKenji         fantasy.UserID         = 3
)

var seedTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func SeedRules() []fantasy.RuleSet {
	rules := fantasy.DefaultRuleSet(SeasonID2026)
	rules.FastestLapBonus = decimal.NewFromInt(1)
	rules.IsDefault = false
	return []fantasy.RuleSet{rules}
}

func SeedRaces() []race.Race {
	override := decimal.NewFromInt(260)
	return []race.Race{
		{ID: RaceIDBahrain, SeasonID: SeasonID2026, Name: "Bahrain Grand Prix", Round: 1, RaceDate: seedTime.AddDate(0, 0, 1)},
		{ID: RaceIDJeddah, SeasonID: SeasonID2026, Name: "Saudi Arabian Grand Prix", Round: 2, RaceDate: seedTime.AddDate(0, 0, 8), BudgetOverride: &override},
	}
}

// SeedDriverOffers prices ten drivers for both seeded races.
func SeedDriverOffers() []fantasy.DriverOffer {
	prices := []int64{60, 55, 50, 45, 40, 30, 25, 20, 15, 10}
	out := make([]fantasy.DriverOffer, 0, len(prices)*2)
	for _, raceID := range []fantasy.RaceID{RaceIDBahrain, RaceIDJeddah} {
		for i, price := range prices {
			driverID := fantasy.DriverID(i + 1)
			out = append(out, fantasy.DriverOffer{
				RaceID:        raceID,
				DriverID:      driverID,
				ConstructorID: fantasy.ConstructorID(i/2 + 1),
				Price:         decimal.NewFromInt(price),
			})
		}
	}
	return out
}

func SeedResults() []fantasy.RaceResult {
	out := make([]fantasy.RaceResult, 0, 10)
	for i := 1; i <= 10; i++ {
		pos := i
		out = append(out, fantasy.RaceResult{
			RaceID:         RaceIDBahrain,
			DriverID:       fantasy.DriverID(i),
			FinishPosition: &pos,
			FastestLap:     i == 3,
		})
	}
	out[9].FinishPosition = nil
	out[9].DNF = true
	return out
}

func SeedChampionships() []championship.Championship {
	return []championship.Championship{
		{ID: ChampionshipPaddock, SeasonID: SeasonID2026, Name: "Paddock Club", IsActive: true},
	}
}

func SeedParticipants() map[fantasy.ChampionshipID][]championship.Participant {
	return map[fantasy.ChampionshipID][]championship.Participant{
		ChampionshipPaddock: {
			{UserID: UserIDAdmin, Username: "admin", JoinedAt: seedTime},
			{UserID: UserIDMarta, Username: "marta", JoinedAt: seedTime},
			{UserID: UserIDKenji, Username: "kenji", JoinedAt: seedTime},
		},
	}
}

func SeedAdmins() map[fantasy.ChampionshipID][]fantasy.UserID {
	return map[fantasy.ChampionshipID][]fantasy.UserID{
		ChampionshipPaddock: {UserIDAdmin},
	}
}

func SeedLineups() []lineup.Lineup {
	return []lineup.Lineup{
		{
			ID:             1,
			UserID:         UserIDAdmin,
			RaceID:         RaceIDBahrain,
			ChampionshipID: ChampionshipPaddock,
			DriverIDs:      []fantasy.DriverID{1, 4, 7, 8, 9, 10},
			SubmittedAt:    seedTime,
		},
		{
			ID:             2,
			UserID:         UserIDMarta,
			RaceID:         RaceIDBahrain,
			ChampionshipID: ChampionshipPaddock,
			DriverIDs:      []fantasy.DriverID{2, 3, 6, 7, 9},
			DRSEnabled:     true,
			SubmittedAt:    seedTime.Add(time.Hour),
		},
	}
}
