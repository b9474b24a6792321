package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
)

type Handler struct {
	rulesService     *usecase.RulesService
	resultsService   *usecase.ResultsService
	lineupService    *usecase.LineupService
	standingsService *usecase.StandingsService
	contexts         *usecase.RequestContextFactory
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	rulesService *usecase.RulesService,
	resultsService *usecase.ResultsService,
	lineupService *usecase.LineupService,
	standingsService *usecase.StandingsService,
	contexts *usecase.RequestContextFactory,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		rulesService:     rulesService,
		resultsService:   resultsService,
		lineupService:    lineupService,
		standingsService: standingsService,
		contexts:         contexts,
		logger:           logger,
		validator:        validate,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs at warn for caller mistakes and at error for everything the
// caller could not have avoided, then writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// validateRequest reports the first failing field by its JSON name so the
// error envelope can point at it.
func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &usecase.FieldError{
			Field:   topLevelField(fe.Namespace()),
			Message: fmt.Sprintf("failed %q validation", fe.Tag()),
		}
	}
	return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
}

// topLevelField maps "saveLineupRequest.drivers[2]" to "drivers".
func topLevelField(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}
	if i := strings.IndexAny(rest, ".["); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func pathID(r *http.Request, param, field string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(param))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &usecase.FieldError{Field: field, Message: fmt.Sprintf("must be a positive integer, got %q", raw)}
	}
	return id, nil
}

// optionalUserID reads ?user_id=. Absent means nil.
func optionalUserID(r *http.Request) (*fantasy.UserID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, &usecase.FieldError{Field: "user_id", Message: fmt.Sprintf("must be a positive integer, got %q", raw)}
	}
	userID := fantasy.UserID(id)
	return &userID, nil
}
