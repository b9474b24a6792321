package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type SaveLineupInput struct {
	RaceID         fantasy.RaceID
	ChampionshipID fantasy.ChampionshipID
	DriverIDs      []fantasy.DriverID
	DRSEnabled     bool
}

type SavedLineup struct {
	Lineup    lineup.Lineup
	Selection fantasy.ValidatedSelection
}

// LineupView is a stored lineup with its live score for the current results.
type LineupView struct {
	Lineup   lineup.Lineup
	Points   decimal.Decimal
	Cost     decimal.Decimal
	Budget   decimal.Decimal
	Unpriced []fantasy.DriverID
}

type LineupService struct {
	lineupRepo       lineup.Repository
	raceRepo         race.Repository
	championshipRepo championship.Repository
	rules            *RulesService
	logger           *logging.Logger
	now              func() time.Time
}

func NewLineupService(
	lineupRepo lineup.Repository,
	raceRepo race.Repository,
	championshipRepo championship.Repository,
	rules *RulesService,
	logger *logging.Logger,
) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		lineupRepo:       lineupRepo,
		raceRepo:         raceRepo,
		championshipRepo: championshipRepo,
		rules:            rules,
		logger:           logger,
		now:              time.Now,
	}
}

// Save validates the selection against the race offers and stores it as the
// caller's lineup, replacing any previous one.
func (s *LineupService) Save(ctx context.Context, rc RequestContext, input SaveLineupInput) (SavedLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save",
		attribute.Int64("race_id", int64(input.RaceID)),
		attribute.Int64("championship_id", int64(input.ChampionshipID)),
	)
	defer span.End()

	if err := rc.requireAuthenticated(); err != nil {
		return SavedLineup{}, err
	}
	raceItem, champ, err := s.loadScope(ctx, input.RaceID, input.ChampionshipID)
	if err != nil {
		return SavedLineup{}, err
	}
	participant, err := s.isParticipant(ctx, champ.ID, rc.UserID)
	if err != nil {
		return SavedLineup{}, err
	}
	if !participant {
		return SavedLineup{}, fmt.Errorf("%w: user %d is not a participant of championship %d", ErrForbidden, rc.UserID, champ.ID)
	}

	rules, err := s.rules.rulesOrDefault(ctx, raceItem.SeasonID)
	if err != nil {
		return SavedLineup{}, err
	}
	budget := rules.BudgetFor(raceItem.BudgetOverride)

	saved, selection, err := s.lineupRepo.Upsert(ctx, lineup.UpsertInput{
		UserID:         rc.UserID,
		RaceID:         raceItem.ID,
		ChampionshipID: champ.ID,
		DriverIDs:      input.DriverIDs,
		DRSEnabled:     input.DRSEnabled,
		SubmittedAt:    s.now().UTC(),
	}, func(offers []fantasy.DriverOffer) (fantasy.ValidatedSelection, error) {
		return fantasy.ValidateSelection(budget, rules.MaxRosterSize, input.DriverIDs, offers)
	})
	if err != nil {
		var selErr *fantasy.SelectionError
		if errors.As(err, &selErr) {
			return SavedLineup{}, &FieldError{Field: selErr.Field, Message: selErr.Error(), Cause: err}
		}
		recordSpanError(span, err)
		return SavedLineup{}, fmt.Errorf("upsert lineup: %w", err)
	}

	s.logger.InfoContext(ctx, "lineup saved",
		"user_id", rc.UserID,
		"race_id", raceItem.ID,
		"championship_id", champ.ID,
		"cost", selection.Cost.String(),
		"budget", selection.Budget.String(),
	)
	return SavedLineup{Lineup: saved, Selection: selection}, nil
}

// Get returns a user's lineup for a race. Reading someone else's lineup
// requires championship admin rights.
func (s *LineupService) Get(ctx context.Context, rc RequestContext, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID, userID fantasy.UserID) (LineupView, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get",
		attribute.Int64("race_id", int64(raceID)),
		attribute.Int64("championship_id", int64(championshipID)),
	)
	defer span.End()

	if err := rc.requireAuthenticated(); err != nil {
		return LineupView{}, false, err
	}
	if userID <= 0 {
		userID = rc.UserID
	}
	if userID != rc.UserID {
		admin, err := rc.IsChampionshipAdmin(ctx, championshipID)
		if err != nil {
			return LineupView{}, false, err
		}
		if !admin {
			return LineupView{}, false, fmt.Errorf("%w: only championship admins can view other lineups", ErrForbidden)
		}
	}

	raceItem, champ, err := s.loadScope(ctx, raceID, championshipID)
	if err != nil {
		return LineupView{}, false, err
	}

	item, exists, err := s.lineupRepo.GetByUserAndRace(ctx, userID, raceItem.ID, champ.ID)
	if err != nil {
		recordSpanError(span, err)
		return LineupView{}, false, fmt.Errorf("get lineup: %w", err)
	}
	if !exists {
		return LineupView{}, false, nil
	}

	rules, err := s.rules.rulesOrDefault(ctx, raceItem.SeasonID)
	if err != nil {
		return LineupView{}, false, err
	}
	results, err := s.raceRepo.ListResults(ctx, raceItem.ID)
	if err != nil {
		return LineupView{}, false, fmt.Errorf("list race results: %w", err)
	}
	offers, err := s.raceRepo.ListDriverOffers(ctx, raceItem.ID)
	if err != nil {
		return LineupView{}, false, fmt.Errorf("list driver offers: %w", err)
	}

	score := fantasy.ScoreLineup(item.DriverIDs, fantasy.CalculateDriverPoints(rules, results), fantasy.IndexOffers(offers))
	if len(score.Unpriced) > 0 {
		s.logger.WarnContext(ctx, "lineup references drivers without offer", "lineup_id", item.ID, "drivers", score.Unpriced)
	}
	return LineupView{
		Lineup:   item,
		Points:   score.Points,
		Cost:     score.Cost,
		Budget:   rules.BudgetFor(raceItem.BudgetOverride),
		Unpriced: score.Unpriced,
	}, true, nil
}

func (s *LineupService) loadScope(ctx context.Context, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) (race.Race, championship.Championship, error) {
	return resolveRaceScope(ctx, s.raceRepo, s.championshipRepo, raceID, championshipID)
}

// resolveRaceScope loads the race and championship and checks they belong to
// the same season.
func resolveRaceScope(
	ctx context.Context,
	raceRepo race.Repository,
	championshipRepo championship.Repository,
	raceID fantasy.RaceID,
	championshipID fantasy.ChampionshipID,
) (race.Race, championship.Championship, error) {
	if raceID <= 0 {
		return race.Race{}, championship.Championship{}, invalidField("race_id", "must be a positive integer")
	}
	if championshipID <= 0 {
		return race.Race{}, championship.Championship{}, invalidField("championship_id", "must be a positive integer")
	}

	raceItem, exists, err := raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return race.Race{}, championship.Championship{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return race.Race{}, championship.Championship{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	champ, exists, err := championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		return race.Race{}, championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return race.Race{}, championship.Championship{}, fmt.Errorf("%w: championship=%d", ErrNotFound, championshipID)
	}
	if champ.SeasonID != raceItem.SeasonID {
		return race.Race{}, championship.Championship{}, invalidField("race_id", fmt.Sprintf("race %d is not part of season %d", raceID, champ.SeasonID))
	}
	return raceItem, champ, nil
}

func (s *LineupService) isParticipant(ctx context.Context, championshipID fantasy.ChampionshipID, userID fantasy.UserID) (bool, error) {
	participants, err := s.championshipRepo.ListParticipants(ctx, championshipID)
	if err != nil {
		return false, fmt.Errorf("list participants: %w", err)
	}
	for _, p := range participants {
		if p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
