package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/season"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type RulesService struct {
	seasonRepo season.Repository
	logger     *logging.Logger
}

func NewRulesService(seasonRepo season.Repository, logger *logging.Logger) *RulesService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RulesService{seasonRepo: seasonRepo, logger: logger}
}

// Get returns the season rules, or the default rule set flagged IsDefault when
// the season has none configured.
func (s *RulesService) Get(ctx context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RulesService.Get", attribute.Int64("season_id", int64(seasonID)))
	defer span.End()

	if seasonID <= 0 {
		return fantasy.RuleSet{}, invalidField("season_id", "must be a positive integer")
	}
	return s.rulesOrDefault(ctx, seasonID)
}

func (s *RulesService) Upsert(ctx context.Context, rc RequestContext, rules fantasy.RuleSet) (fantasy.RuleSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RulesService.Upsert", attribute.Int64("season_id", int64(rules.SeasonID)))
	defer span.End()

	if err := rc.requireSuperAdmin(); err != nil {
		return fantasy.RuleSet{}, err
	}
	if rules.SeasonID <= 0 {
		return fantasy.RuleSet{}, invalidField("season_id", "must be a positive integer")
	}
	if err := rules.Validate(); err != nil {
		return fantasy.RuleSet{}, &FieldError{Field: "rules", Message: err.Error(), Cause: err}
	}

	current, exists, err := s.seasonRepo.GetRules(ctx, rules.SeasonID)
	if err != nil {
		recordSpanError(span, err)
		return fantasy.RuleSet{}, fmt.Errorf("get season rules: %w", err)
	}
	rules.Version = fantasy.DefaultRuleSetVersion
	if exists {
		rules.Version = current.Version + 1
	}
	rules.IsDefault = false

	if err := s.seasonRepo.UpsertRules(ctx, rules); err != nil {
		recordSpanError(span, err)
		return fantasy.RuleSet{}, fmt.Errorf("upsert season rules: %w", err)
	}

	s.logger.InfoContext(ctx, "season rules updated", "season_id", rules.SeasonID, "version", rules.Version, "user_id", rc.UserID)
	return rules, nil
}

// resolve fails with fantasy.ErrRulesNotFound when the season has no rules.
func (s *RulesService) resolve(ctx context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, error) {
	rules, exists, err := s.seasonRepo.GetRules(ctx, seasonID)
	if err != nil {
		return fantasy.RuleSet{}, fmt.Errorf("get season rules: %w", err)
	}
	if !exists {
		return fantasy.RuleSet{}, fmt.Errorf("%w: season_id=%d", fantasy.ErrRulesNotFound, seasonID)
	}
	return rules.WithDefaults(), nil
}

// rulesOrDefault keeps scoring available for misconfigured seasons.
func (s *RulesService) rulesOrDefault(ctx context.Context, seasonID fantasy.SeasonID) (fantasy.RuleSet, error) {
	rules, err := s.resolve(ctx, seasonID)
	if errors.Is(err, fantasy.ErrRulesNotFound) {
		s.logger.WarnContext(ctx, "season rules missing, using default rule set", "season_id", seasonID)
		return fantasy.DefaultRuleSet(seasonID), nil
	}
	if err != nil {
		return fantasy.RuleSet{}, err
	}
	return rules, nil
}
