package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/user"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
)

type testServices struct {
	seasonRepo       *memory.SeasonRepository
	raceRepo         *memory.RaceRepository
	championshipRepo *memory.ChampionshipRepository
	lineupRepo       *memory.LineupRepository

	rules     *RulesService
	results   *ResultsService
	lineups   *LineupService
	standings *StandingsService
	contexts  *RequestContextFactory
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	logger := logging.NewNop()
	seasonRepo := memory.NewSeasonRepository(memory.SeedRules())
	raceRepo := memory.NewRaceRepository(memory.SeedRaces(), memory.SeedDriverOffers(), memory.SeedResults())
	championshipRepo := memory.NewChampionshipRepository(memory.SeedChampionships(), memory.SeedParticipants(), memory.SeedAdmins())
	lineupRepo := memory.NewLineupRepository(raceRepo, memory.SeedLineups())

	rules := NewRulesService(seasonRepo, logger)
	lineups := NewLineupService(lineupRepo, raceRepo, championshipRepo, rules, logger)
	lineups.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }

	return testServices{
		seasonRepo:       seasonRepo,
		raceRepo:         raceRepo,
		championshipRepo: championshipRepo,
		lineupRepo:       lineupRepo,
		rules:            rules,
		results:          NewResultsService(raceRepo, rules, logger),
		lineups:          lineups,
		standings:        NewStandingsService(raceRepo, championshipRepo, lineupRepo, rules, logger, 2),
		contexts:         NewRequestContextFactory(championshipRepo),
	}
}

func (s testServices) as(userID fantasy.UserID, superAdmin bool) RequestContext {
	return s.contexts.For(user.Principal{UserID: userID, IsSuperAdmin: superAdmin})
}

func intPtr(v int) *int {
	return &v
}
