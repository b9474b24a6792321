package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
)

func (h *Handler) GetRaceLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceLineup")
	defer span.End()

	rc, err := h.requestContext(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	championshipID, raceID, err := championshipRaceIDs(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	userID, err := optionalUserID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var target fantasy.UserID
	if userID != nil {
		target = *userID
	}

	view, exists, err := h.lineupService.Get(ctx, rc, raceID, championshipID, target)
	if err != nil {
		h.fail(ctx, w, "get lineup failed", err, "race_id", raceID, "championship_id", championshipID, "user_id", rc.UserID)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupViewToDTO(view))
}

func (h *Handler) SaveRaceLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveRaceLineup")
	defer span.End()

	rc, err := h.requestContext(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	championshipID, raceID, err := championshipRaceIDs(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveLineupRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "save lineup rejected", err, "race_id", raceID, "championship_id", championshipID)
		return
	}

	saved, err := h.lineupService.Save(ctx, rc, usecase.SaveLineupInput{
		RaceID:         raceID,
		ChampionshipID: championshipID,
		DriverIDs:      toDriverIDs(req.DriverIDs),
		DRSEnabled:     req.DRSEnabled,
	})
	if err != nil {
		h.fail(ctx, w, "save lineup failed", err, "race_id", raceID, "championship_id", championshipID, "user_id", rc.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, savedLineupToDTO(saved))
}

func championshipRaceIDs(r *http.Request) (fantasy.ChampionshipID, fantasy.RaceID, error) {
	championshipID, err := pathID(r, "championshipID", "championship_id")
	if err != nil {
		return 0, 0, err
	}
	raceID, err := pathID(r, "raceID", "race_id")
	if err != nil {
		return 0, 0, err
	}
	return fantasy.ChampionshipID(championshipID), fantasy.RaceID(raceID), nil
}
