package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

func (h *Handler) ListRaceResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRaceResults")
	defer span.End()

	raceID, err := pathID(r, "raceID", "race_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.resultsService.ListResults(ctx, fantasy.RaceID(raceID))
	if err != nil {
		h.fail(ctx, w, "list race results failed", err, "race_id", raceID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, raceResultsToDTO(rows))
}

func (h *Handler) ReplaceRaceResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceRaceResults")
	defer span.End()

	rc, err := h.requestContext(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	raceID, err := pathID(r, "raceID", "race_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req replaceResultsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "replace race results rejected", err, "race_id", raceID)
		return
	}

	out, err := h.resultsService.ReplaceResults(ctx, rc, fantasy.RaceID(raceID), req.toResults(fantasy.RaceID(raceID)))
	if err != nil {
		h.fail(ctx, w, "replace race results failed", err, "race_id", raceID, "user_id", rc.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, replacedResultsDTO{
		RaceID:       int64(out.RaceID),
		Stored:       out.Stored,
		DriverPoints: driverScoresToDTO(out.Points),
	})
}

func (h *Handler) GetRaceDriverPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceDriverPoints")
	defer span.End()

	raceID, err := pathID(r, "raceID", "race_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.resultsService.DriverPoints(ctx, fantasy.RaceID(raceID))
	if err != nil {
		h.fail(ctx, w, "get race driver points failed", err, "race_id", raceID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, driverPointsDTO{
		RaceID:       int64(out.RaceID),
		SeasonID:     int64(out.SeasonID),
		RulesVersion: out.RulesVersion,
		Drivers:      driverScoresToDTO(out.Drivers),
	})
}
