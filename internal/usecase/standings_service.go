package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"github.com/riskibarqy/fantasy-formula/internal/platform/resilience"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultStandingsWorkers = 4

type RaceStandingsView struct {
	RaceID         fantasy.RaceID
	ChampionshipID fantasy.ChampionshipID
	RulesVersion   int
	HasResults     bool
	Entries        []fantasy.RaceEntry
}

type ChampionshipStanding struct {
	Position    int
	UserID      fantasy.UserID
	Username    string
	Points      decimal.Decimal
	RawPoints   decimal.Decimal
	RacesScored int
}

type ChampionshipStandingsView struct {
	ChampionshipID fantasy.ChampionshipID
	SeasonID       fantasy.SeasonID
	RulesVersion   int
	RulesDefault   bool
	ScoredRaces    []fantasy.RaceID
	Standings      []ChampionshipStanding
	// User is nil only when no user was requested. A user outside the
	// standings gets zero points one place below the last entry.
	User *ChampionshipStanding
}

type MyChampionship struct {
	Championship championship.Championship
	Participants int
	Standing     ChampionshipStanding
}

// championshipTable is the shared result of one standings computation. It is
// handed to every coalesced caller and must not be mutated.
type championshipTable struct {
	rules     fantasy.RuleSet
	races     []fantasy.RaceID
	entries   []fantasy.ChampionshipEntry
	usernames map[fantasy.UserID]string
}

type StandingsService struct {
	raceRepo         race.Repository
	championshipRepo championship.Repository
	lineupRepo       lineup.Repository
	rules            *RulesService
	logger           *logging.Logger
	workers          int
	flight           resilience.SingleFlight
}

func NewStandingsService(
	raceRepo race.Repository,
	championshipRepo championship.Repository,
	lineupRepo lineup.Repository,
	rules *RulesService,
	logger *logging.Logger,
	workers int,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultStandingsWorkers
	}
	return &StandingsService{
		raceRepo:         raceRepo,
		championshipRepo: championshipRepo,
		lineupRepo:       lineupRepo,
		rules:            rules,
		logger:           logger,
		workers:          workers,
	}
}

// RaceStandings ranks every lineup submitted for the race in the championship.
func (s *StandingsService) RaceStandings(ctx context.Context, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) (RaceStandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RaceStandings",
		attribute.Int64("race_id", int64(raceID)),
		attribute.Int64("championship_id", int64(championshipID)),
	)
	defer span.End()

	raceItem, champ, err := resolveRaceScope(ctx, s.raceRepo, s.championshipRepo, raceID, championshipID)
	if err != nil {
		return RaceStandingsView{}, err
	}
	rules, err := s.rules.rulesOrDefault(ctx, raceItem.SeasonID)
	if err != nil {
		return RaceStandingsView{}, err
	}
	input, err := s.loadRaceInput(ctx, raceItem.ID, champ.ID)
	if err != nil {
		recordSpanError(span, err)
		return RaceStandingsView{}, err
	}

	standings := fantasy.ScoreRace(rules, input)
	s.warnUnpriced(ctx, champ.ID, standings)
	return RaceStandingsView{
		RaceID:         raceItem.ID,
		ChampionshipID: champ.ID,
		RulesVersion:   rules.Version,
		HasResults:     len(input.Results) > 0,
		Entries:        standings.Entries,
	}, nil
}

// ChampionshipStandings lists every participant with accumulated championship
// points. Every race holding a lineup is scored, with or without results; a
// race without results ranks all its lineups level at zero.
func (s *StandingsService) ChampionshipStandings(ctx context.Context, championshipID fantasy.ChampionshipID, userID *fantasy.UserID) (ChampionshipStandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ChampionshipStandings",
		attribute.Int64("championship_id", int64(championshipID)),
	)
	defer span.End()

	champ, err := s.getChampionship(ctx, championshipID)
	if err != nil {
		return ChampionshipStandingsView{}, err
	}
	table, err := s.computeChampionship(ctx, champ)
	if err != nil {
		recordSpanError(span, err)
		return ChampionshipStandingsView{}, err
	}

	out := ChampionshipStandingsView{
		ChampionshipID: champ.ID,
		SeasonID:       champ.SeasonID,
		RulesVersion:   table.rules.Version,
		RulesDefault:   table.rules.IsDefault,
		ScoredRaces:    slices.Clone(table.races),
		Standings:      make([]ChampionshipStanding, 0, len(table.entries)),
	}
	for _, entry := range table.entries {
		out.Standings = append(out.Standings, table.standing(entry))
	}
	if userID != nil {
		summary := ChampionshipStanding{
			Position:  len(table.entries) + 1,
			UserID:    *userID,
			Points:    decimal.Zero,
			RawPoints: decimal.Zero,
		}
		if entry, ok := fantasy.FindEntry(table.entries, *userID); ok {
			summary = table.standing(entry)
		}
		out.User = &summary
	}
	return out, nil
}

// MyChampionships returns the caller's position in every championship they
// take part in, ordered by championship id.
func (s *StandingsService) MyChampionships(ctx context.Context, rc RequestContext) ([]MyChampionship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.MyChampionships")
	defer span.End()

	if err := rc.requireAuthenticated(); err != nil {
		return nil, err
	}
	champs, err := s.championshipRepo.ListByUser(ctx, rc.UserID)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list championships by user: %w", err)
	}
	if len(champs) == 0 {
		return []MyChampionship{}, nil
	}
	slices.SortFunc(champs, func(a, b championship.Championship) int { return cmp.Compare(a.ID, b.ID) })

	workerPool, err := ants.NewPool(min(s.workers, len(champs)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	out := make([]MyChampionship, len(champs))
	var (
		workers  sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for i, champ := range champs {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			table, err := s.computeChampionship(ctx, champ)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("compute championship %d: %w", champ.ID, err)
				}
				errMu.Unlock()
				return
			}
			row := MyChampionship{Championship: champ, Participants: len(table.usernames)}
			if entry, ok := fantasy.FindEntry(table.entries, rc.UserID); ok {
				row.Standing = table.standing(entry)
			}
			out[i] = row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		recordSpanError(span, firstErr)
		return nil, firstErr
	}
	return out, nil
}

// computeChampionship coalesces concurrent computations of the same
// championship. Nothing is kept once the call returns. The shared build runs
// detached from the leading caller's cancellation, so each caller only fails
// on its own context.
func (s *StandingsService) computeChampionship(ctx context.Context, champ championship.Championship) (championshipTable, error) {
	key := fmt.Sprintf("championship:%d", champ.ID)
	done := make(chan struct{})
	var (
		value  any
		err    error
		shared bool
	)
	go func() {
		defer close(done)
		value, err, shared = s.flight.Do(key, func() (any, error) {
			return s.buildChampionship(context.WithoutCancel(ctx), champ)
		})
	}()

	select {
	case <-ctx.Done():
		return championshipTable{}, ctx.Err()
	case <-done:
	}
	if err != nil {
		return championshipTable{}, err
	}
	if shared {
		s.logger.DebugContext(ctx, "championship standings computation shared", "championship_id", champ.ID)
	}
	table, ok := value.(championshipTable)
	if !ok {
		return championshipTable{}, fmt.Errorf("unexpected standings computation result %T", value)
	}
	return table, nil
}

func (s *StandingsService) buildChampionship(ctx context.Context, champ championship.Championship) (championshipTable, error) {
	rules, err := s.rules.rulesOrDefault(ctx, champ.SeasonID)
	if err != nil {
		return championshipTable{}, err
	}
	participants, err := s.championshipRepo.ListParticipants(ctx, champ.ID)
	if err != nil {
		return championshipTable{}, fmt.Errorf("list participants: %w", err)
	}
	raceIDs, err := s.lineupRepo.ListRaceIDs(ctx, champ.ID)
	if err != nil {
		return championshipTable{}, fmt.Errorf("list lineup races: %w", err)
	}

	loaders := pool.NewWithResults[fantasy.RaceInput]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(s.workers)
	for _, raceID := range raceIDs {
		loaders.Go(func(ctx context.Context) (fantasy.RaceInput, error) {
			return s.loadRaceInput(ctx, raceID, champ.ID)
		})
	}
	inputs, err := loaders.Wait()
	if err != nil {
		return championshipTable{}, err
	}
	// Ranking runs in race order once every input is loaded.
	slices.SortFunc(inputs, func(a, b fantasy.RaceInput) int { return cmp.Compare(a.RaceID, b.RaceID) })

	races := make([]fantasy.RaceStandings, 0, len(inputs))
	scored := make([]fantasy.RaceID, 0, len(inputs))
	for _, input := range inputs {
		standings := fantasy.ScoreRace(rules, input)
		s.warnUnpriced(ctx, champ.ID, standings)
		races = append(races, standings)
		scored = append(scored, input.RaceID)
	}

	usernames := make(map[fantasy.UserID]string, len(participants))
	participantIDs := make([]fantasy.UserID, 0, len(participants))
	for _, p := range participants {
		usernames[p.UserID] = p.Username
		participantIDs = append(participantIDs, p.UserID)
	}

	return championshipTable{
		rules:     rules,
		races:     scored,
		entries:   fantasy.BuildChampionshipStandings(rules.RankingPointsTable, races, participantIDs),
		usernames: usernames,
	}, nil
}

func (s *StandingsService) loadRaceInput(ctx context.Context, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) (fantasy.RaceInput, error) {
	results, err := s.raceRepo.ListResults(ctx, raceID)
	if err != nil {
		return fantasy.RaceInput{}, fmt.Errorf("list results for race %d: %w", raceID, err)
	}
	offers, err := s.raceRepo.ListDriverOffers(ctx, raceID)
	if err != nil {
		return fantasy.RaceInput{}, fmt.Errorf("list driver offers for race %d: %w", raceID, err)
	}
	items, err := s.lineupRepo.ListByRace(ctx, raceID, championshipID)
	if err != nil {
		return fantasy.RaceInput{}, fmt.Errorf("list lineups for race %d: %w", raceID, err)
	}

	lineups := make([]fantasy.LineupEntry, 0, len(items))
	for _, item := range items {
		lineups = append(lineups, fantasy.LineupEntry{
			LineupID:    item.ID,
			UserID:      item.UserID,
			DriverIDs:   item.DriverIDs,
			SubmittedAt: item.SubmittedAt,
		})
	}
	return fantasy.RaceInput{RaceID: raceID, Results: results, Offers: offers, Lineups: lineups}, nil
}

func (s *StandingsService) getChampionship(ctx context.Context, championshipID fantasy.ChampionshipID) (championship.Championship, error) {
	if championshipID <= 0 {
		return championship.Championship{}, invalidField("championship_id", "must be a positive integer")
	}
	champ, exists, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%d", ErrNotFound, championshipID)
	}
	return champ, nil
}

// warnUnpriced reports lineups holding drivers without an offer row. Those
// drivers were scored as zero.
func (s *StandingsService) warnUnpriced(ctx context.Context, championshipID fantasy.ChampionshipID, standings fantasy.RaceStandings) {
	for _, entry := range standings.Entries {
		if len(entry.Unpriced) == 0 {
			continue
		}
		s.logger.WarnContext(ctx, "lineup references drivers without offer",
			"championship_id", championshipID,
			"race_id", standings.RaceID,
			"lineup_id", entry.LineupID,
			"drivers", entry.Unpriced,
		)
	}
}

func (t championshipTable) standing(entry fantasy.ChampionshipEntry) ChampionshipStanding {
	return ChampionshipStanding{
		Position:    entry.Rank,
		UserID:      entry.UserID,
		Username:    t.usernames[entry.UserID],
		Points:      entry.ChampionshipPoints,
		RawPoints:   entry.RawPointsSum,
		RacesScored: entry.RacesScored,
	}
}
