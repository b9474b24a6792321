package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	championshipmock "github.com/riskibarqy/fantasy-formula/internal/mocks/domain/championship"
	lineupmock "github.com/riskibarqy/fantasy-formula/internal/mocks/domain/lineup"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStandingsService_RaceStandings(t *testing.T) {
	svc := newTestServices(t)

	out, err := svc.standings.RaceStandings(t.Context(), memory.RaceIDBahrain, memory.ChampionshipPaddock)
	require.NoError(t, err)
	require.True(t, out.HasResults)
	require.Len(t, out.Entries, 2)

	first, second := out.Entries[0], out.Entries[1]
	require.Equal(t, memory.UserIDAdmin, first.UserID)
	require.Equal(t, 1, first.Rank)
	require.True(t, first.Points.Equal(decimal.NewFromInt(435)))
	require.Equal(t, memory.UserIDMarta, second.UserID)
	require.Equal(t, 2, second.Rank)
	require.True(t, second.Points.Equal(decimal.NewFromInt(431)))
}

func TestStandingsService_RaceStandings_UnknownChampionship(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.standings.RaceStandings(t.Context(), memory.RaceIDBahrain, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStandingsService_ChampionshipStandings(t *testing.T) {
	svc := newTestServices(t)
	kenji := memory.UserIDKenji

	out, err := svc.standings.ChampionshipStandings(t.Context(), memory.ChampionshipPaddock, &kenji)
	require.NoError(t, err)
	require.Equal(t, []fantasy.RaceID{memory.RaceIDBahrain}, out.ScoredRaces)
	require.Len(t, out.Standings, 3, "every participant is listed")

	want := []struct {
		userID   fantasy.UserID
		username string
		points   int64
		position int
	}{
		{memory.UserIDAdmin, "admin", 25, 1},
		{memory.UserIDMarta, "marta", 18, 2},
		{memory.UserIDKenji, "kenji", 0, 3},
	}
	for i, w := range want {
		got := out.Standings[i]
		require.Equal(t, w.userID, got.UserID)
		require.Equal(t, w.username, got.Username)
		require.Equal(t, w.position, got.Position)
		require.True(t, got.Points.Equal(decimal.NewFromInt(w.points)), "user %d points %s", w.userID, got.Points)
	}

	require.NotNil(t, out.User)
	require.Equal(t, memory.UserIDKenji, out.User.UserID)
	require.Equal(t, 0, out.User.RacesScored)
}

func TestStandingsService_ChampionshipStandings_UnknownUserSummary(t *testing.T) {
	svc := newTestServices(t)
	stranger := fantasy.UserID(404)

	out, err := svc.standings.ChampionshipStandings(t.Context(), memory.ChampionshipPaddock, &stranger)
	require.NoError(t, err)
	require.NotNil(t, out.User)
	require.Equal(t, stranger, out.User.UserID)
	require.Equal(t, len(out.Standings)+1, out.User.Position)
	require.True(t, out.User.Points.IsZero())
	require.True(t, out.User.RawPoints.IsZero())
	require.Zero(t, out.User.RacesScored)

	out, err = svc.standings.ChampionshipStandings(t.Context(), memory.ChampionshipPaddock, nil)
	require.NoError(t, err)
	require.Nil(t, out.User)
}

func TestStandingsService_ChampionshipStandings_ScoresRacesWithoutResults(t *testing.T) {
	svc := newTestServices(t)
	kenji := memory.UserIDKenji

	_, err := svc.lineups.Save(t.Context(), svc.as(kenji, false), SaveLineupInput{
		RaceID:         memory.RaceIDJeddah,
		ChampionshipID: memory.ChampionshipPaddock,
		DriverIDs:      []fantasy.DriverID{1},
	})
	require.NoError(t, err)

	// Kenji holds the only Jeddah lineup, so he ranks first there at zero raw points.
	out, err := svc.standings.ChampionshipStandings(t.Context(), memory.ChampionshipPaddock, &kenji)
	require.NoError(t, err)
	require.Equal(t, []fantasy.RaceID{memory.RaceIDBahrain, memory.RaceIDJeddah}, out.ScoredRaces)

	want := []struct {
		userID   fantasy.UserID
		points   int64
		position int
	}{
		{memory.UserIDAdmin, 25, 1},
		{kenji, 25, 1},
		{memory.UserIDMarta, 18, 3},
	}
	for i, w := range want {
		got := out.Standings[i]
		require.Equal(t, w.userID, got.UserID)
		require.Equal(t, w.position, got.Position)
		require.True(t, got.Points.Equal(decimal.NewFromInt(w.points)), "user %d points %s", w.userID, got.Points)
	}
	require.NotNil(t, out.User)
	require.Equal(t, 1, out.User.RacesScored)
	require.True(t, out.User.RawPoints.IsZero())

	_, err = svc.results.ReplaceResults(t.Context(), svc.as(memory.UserIDAdmin, true), memory.RaceIDJeddah, []fantasy.RaceResult{
		{DriverID: 1, FinishPosition: intPtr(1)},
	})
	require.NoError(t, err)

	out, err = svc.standings.ChampionshipStandings(t.Context(), memory.ChampionshipPaddock, &kenji)
	require.NoError(t, err)
	require.Equal(t, []fantasy.RaceID{memory.RaceIDBahrain, memory.RaceIDJeddah}, out.ScoredRaces)
	require.True(t, out.User.Points.Equal(decimal.NewFromInt(25)))
	require.True(t, out.User.RawPoints.Equal(decimal.NewFromInt(150)))
}

func TestStandingsService_ChampionshipStandings_SharedBuildSurvivesLeaderCancel(t *testing.T) {
	t.Parallel()

	raceRepo := memory.NewRaceRepository(memory.SeedRaces(), memory.SeedDriverOffers(), memory.SeedResults())
	champRepo := championshipmock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)
	rules := NewRulesService(memory.NewSeasonRepository(memory.SeedRules()), logging.NewNop())
	service := NewStandingsService(raceRepo, champRepo, lineupRepo, rules, logging.NewNop(), 1)

	champ := championship.Championship{ID: 7, SeasonID: memory.SeasonID2026}
	champRepo.On("GetByID", mock.Anything, champ.ID).Return(champ, true, nil)
	champRepo.
		On("ListParticipants", mock.Anything, champ.ID).
		Return([]championship.Participant{{UserID: memory.UserIDMarta, Username: "marta"}}, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	var enteredOnce sync.Once
	lineupRepo.
		On("ListRaceIDs", mock.Anything, champ.ID).
		Return(func(ctx context.Context, _ fantasy.ChampionshipID) ([]fantasy.RaceID, error) {
			enteredOnce.Do(func() { close(entered) })
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-release:
				return []fantasy.RaceID{}, nil
			}
		})

	leaderCtx, cancelLeader := context.WithCancel(t.Context())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := service.ChampionshipStandings(leaderCtx, champ.ID, nil)
		leaderErr <- err
	}()
	<-entered

	type outcome struct {
		view ChampionshipStandingsView
		err  error
	}
	follower := make(chan outcome, 1)
	go func() {
		view, err := service.ChampionshipStandings(t.Context(), champ.ID, nil)
		follower <- outcome{view: view, err: err}
	}()
	// Give the second caller time to join the in-flight build.
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	got := <-follower
	require.NoError(t, got.err)
	require.Len(t, got.view.Standings, 1)
	require.Equal(t, memory.UserIDMarta, got.view.Standings[0].UserID)
}

func TestStandingsService_ChampionshipStandings_ConcurrentCallsAgree(t *testing.T) {
	svc := newTestServices(t)

	const callers = 8
	results := make([]ChampionshipStandingsView, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.standings.ChampionshipStandings(t.Context(), memory.ChampionshipPaddock, nil)
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		require.Equal(t, results[0].Standings, results[i].Standings)
	}
}

func TestStandingsService_MyChampionships(t *testing.T) {
	svc := newTestServices(t)

	out, err := svc.standings.MyChampionships(t.Context(), svc.as(memory.UserIDMarta, false))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, memory.ChampionshipPaddock, out[0].Championship.ID)
	require.Equal(t, 3, out[0].Participants)
	require.Equal(t, 2, out[0].Standing.Position)
	require.True(t, out[0].Standing.RawPoints.Equal(decimal.NewFromInt(431)))

	_, err = svc.standings.MyChampionships(t.Context(), RequestContext{})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestStandingsService_ChampionshipStandings_ParticipantErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	champRepo := championshipmock.NewRepository(t)
	raceRepo := memory.NewRaceRepository(memory.SeedRaces(), memory.SeedDriverOffers(), memory.SeedResults())
	lineupRepo := memory.NewLineupRepository(raceRepo, nil)
	rules := NewRulesService(memory.NewSeasonRepository(memory.SeedRules()), logging.NewNop())
	service := NewStandingsService(raceRepo, champRepo, lineupRepo, rules, logging.NewNop(), 1)
	repoErr := errors.New("participants unavailable")

	champRepo.
		On("GetByID", mock.Anything, fantasy.ChampionshipID(5)).
		Return(championship.Championship{ID: 5, SeasonID: memory.SeasonID2026}, true, nil).
		Once()
	champRepo.
		On("ListParticipants", mock.Anything, fantasy.ChampionshipID(5)).
		Return(nil, repoErr).
		Once()

	_, err := service.ChampionshipStandings(ctx, 5, nil)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected participants error, got %v", err)
	}
}

func TestStandingsService_RaceStandings_LineupErrorUsingMockery(t *testing.T) {
	t.Parallel()

	raceRepo := memory.NewRaceRepository(memory.SeedRaces(), memory.SeedDriverOffers(), memory.SeedResults())
	champRepo := memory.NewChampionshipRepository(memory.SeedChampionships(), memory.SeedParticipants(), memory.SeedAdmins())
	lineupRepo := lineupmock.NewRepository(t)
	rules := NewRulesService(memory.NewSeasonRepository(memory.SeedRules()), logging.NewNop())
	service := NewStandingsService(raceRepo, champRepo, lineupRepo, rules, logging.NewNop(), 1)
	repoErr := errors.New("lineups unavailable")

	lineupRepo.
		On("ListByRace", mock.Anything, memory.RaceIDBahrain, memory.ChampionshipPaddock).
		Return(nil, repoErr).
		Once()

	_, err := service.RaceStandings(t.Context(), memory.RaceIDBahrain, memory.ChampionshipPaddock)
	require.ErrorIs(t, err, repoErr)
}
