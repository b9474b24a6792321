package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
)

func (h *Handler) GetRaceStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceStandings")
	defer span.End()

	championshipID, raceID, err := championshipRaceIDs(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.standingsService.RaceStandings(ctx, raceID, championshipID)
	if err != nil {
		h.fail(ctx, w, "get race standings failed", err, "race_id", raceID, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, raceStandingsToDTO(out))
}

func (h *Handler) GetChampionshipStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionshipStandings")
	defer span.End()

	championshipID, err := pathID(r, "championshipID", "championship_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	userID, err := optionalUserID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.standingsService.ChampionshipStandings(ctx, fantasy.ChampionshipID(championshipID), userID)
	if err != nil {
		h.fail(ctx, w, "get championship standings failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipStandingsToDTO(out))
}

func (h *Handler) ListMyChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyChampionships")
	defer span.End()

	rc, err := h.requestContext(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.standingsService.MyChampionships(ctx, rc)
	if err != nil {
		h.fail(ctx, w, "list my championships failed", err, "user_id", rc.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, myChampionshipsToDTO(items))
}
