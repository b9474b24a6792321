package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type ResultsService struct {
	raceRepo race.Repository
	rules    *RulesService
	logger   *logging.Logger
}

func NewResultsService(raceRepo race.Repository, rules *RulesService, logger *logging.Logger) *ResultsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultsService{raceRepo: raceRepo, rules: rules, logger: logger}
}

type ReplacedResults struct {
	RaceID fantasy.RaceID
	Stored int
	Points []fantasy.DriverScore
}

type RaceDriverPoints struct {
	RaceID       fantasy.RaceID
	SeasonID     fantasy.SeasonID
	RulesVersion int
	Drivers      []fantasy.DriverScore
}

func (s *ResultsService) ListResults(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.RaceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.ListResults", attribute.Int64("race_id", int64(raceID)))
	defer span.End()

	if _, err := s.getRace(ctx, raceID); err != nil {
		return nil, err
	}
	items, err := s.raceRepo.ListResults(ctx, raceID)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list race results: %w", err)
	}
	return items, nil
}

// ReplaceResults swaps the whole result set of a race. Standings are derived on
// read so nothing else needs to be recomputed.
func (s *ResultsService) ReplaceResults(ctx context.Context, rc RequestContext, raceID fantasy.RaceID, rows []fantasy.RaceResult) (ReplacedResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.ReplaceResults", attribute.Int64("race_id", int64(raceID)))
	defer span.End()

	if err := rc.requireSuperAdmin(); err != nil {
		return ReplacedResults{}, err
	}
	item, err := s.getRace(ctx, raceID)
	if err != nil {
		return ReplacedResults{}, err
	}
	if len(rows) == 0 {
		return ReplacedResults{}, invalidField("results", "at least one result row is required")
	}

	offers, err := s.raceRepo.ListDriverOffers(ctx, raceID)
	if err != nil {
		recordSpanError(span, err)
		return ReplacedResults{}, fmt.Errorf("list driver offers: %w", err)
	}
	offered := fantasy.IndexOffers(offers)

	seen := make(map[fantasy.DriverID]struct{}, len(rows))
	normalized := make([]fantasy.RaceResult, 0, len(rows))
	for _, row := range rows {
		if row.DriverID <= 0 {
			return ReplacedResults{}, invalidField("results.driver_id", "must be a positive integer")
		}
		if _, ok := seen[row.DriverID]; ok {
			return ReplacedResults{}, invalidField("results.driver_id", fmt.Sprintf("driver %d listed more than once", row.DriverID))
		}
		seen[row.DriverID] = struct{}{}
		if row.FinishPosition != nil && *row.FinishPosition < 1 {
			return ReplacedResults{}, invalidField("results.finish_position", "must be at least 1 when set")
		}
		if row.StartingPosition != nil && *row.StartingPosition < 1 {
			return ReplacedResults{}, invalidField("results.starting_position", "must be at least 1 when set")
		}
		if _, ok := offered[row.DriverID]; !ok {
			return ReplacedResults{}, invalidField("results.driver_id", fmt.Sprintf("driver %d is not offered for race %d", row.DriverID, raceID))
		}
		row.RaceID = raceID
		normalized = append(normalized, row)
	}

	if err := s.raceRepo.ReplaceResults(ctx, raceID, normalized); err != nil {
		recordSpanError(span, err)
		return ReplacedResults{}, fmt.Errorf("replace race results: %w", err)
	}

	rules, err := s.rules.rulesOrDefault(ctx, item.SeasonID)
	if err != nil {
		return ReplacedResults{}, err
	}

	s.logger.InfoContext(ctx, "race results replaced", "race_id", raceID, "rows", len(normalized), "user_id", rc.UserID)
	return ReplacedResults{
		RaceID: raceID,
		Stored: len(normalized),
		Points: fantasy.BreakdownDriverPoints(rules, normalized),
	}, nil
}

func (s *ResultsService) DriverPoints(ctx context.Context, raceID fantasy.RaceID) (RaceDriverPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.DriverPoints", attribute.Int64("race_id", int64(raceID)))
	defer span.End()

	item, err := s.getRace(ctx, raceID)
	if err != nil {
		return RaceDriverPoints{}, err
	}
	rules, err := s.rules.rulesOrDefault(ctx, item.SeasonID)
	if err != nil {
		return RaceDriverPoints{}, err
	}
	results, err := s.raceRepo.ListResults(ctx, raceID)
	if err != nil {
		recordSpanError(span, err)
		return RaceDriverPoints{}, fmt.Errorf("list race results: %w", err)
	}

	return RaceDriverPoints{
		RaceID:       raceID,
		SeasonID:     item.SeasonID,
		RulesVersion: rules.Version,
		Drivers:      fantasy.BreakdownDriverPoints(rules, results),
	}, nil
}

func (s *ResultsService) getRace(ctx context.Context, raceID fantasy.RaceID) (race.Race, error) {
	if raceID <= 0 {
		return race.Race{}, invalidField("race_id", "must be a positive integer")
	}
	item, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return race.Race{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return race.Race{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}
	return item, nil
}
