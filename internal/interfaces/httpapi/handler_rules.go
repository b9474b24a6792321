package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

func (h *Handler) GetSeasonRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonRules")
	defer span.End()

	seasonID, err := pathID(r, "seasonID", "season_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rules, err := h.rulesService.Get(ctx, fantasy.SeasonID(seasonID))
	if err != nil {
		h.fail(ctx, w, "get season rules failed", err, "season_id", seasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rulesToDTO(rules))
}

func (h *Handler) UpsertSeasonRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertSeasonRules")
	defer span.End()

	rc, err := h.requestContext(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID, err := pathID(r, "seasonID", "season_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req upsertRulesRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "upsert season rules rejected", err, "season_id", seasonID)
		return
	}

	saved, err := h.rulesService.Upsert(ctx, rc, req.toRuleSet(fantasy.SeasonID(seasonID)))
	if err != nil {
		h.fail(ctx, w, "upsert season rules failed", err, "season_id", seasonID, "user_id", rc.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rulesToDTO(saved))
}
