package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/rules", handler.GetSeasonRules)
	mux.HandleFunc("GET /v1/races/{raceID}/results", handler.ListRaceResults)
	mux.HandleFunc("GET /v1/races/{raceID}/driver-points", handler.GetRaceDriverPoints)
	mux.HandleFunc("GET /v1/championships/{championshipID}/races/{raceID}/standings", handler.GetRaceStandings)
	mux.HandleFunc("GET /v1/championships/{championshipID}/standings", handler.GetChampionshipStandings)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	// Super admin only; the use cases enforce the privilege.
	mux.Handle("PUT /v1/seasons/{seasonID}/rules", RequireAuth(verifier, http.HandlerFunc(handler.UpsertSeasonRules)))
	mux.Handle("PUT /v1/races/{raceID}/results", RequireAuth(verifier, http.HandlerFunc(handler.ReplaceRaceResults)))

	mux.Handle("GET /v1/championships/{championshipID}/races/{raceID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.GetRaceLineup)))
	mux.Handle("PUT /v1/championships/{championshipID}/races/{raceID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.SaveRaceLineup)))
	mux.Handle("GET /v1/me/championships", RequireAuth(verifier, http.HandlerFunc(handler.ListMyChampionships)))
}
