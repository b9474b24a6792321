package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-formula/internal/domain/user"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]user.Principal

func (v stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	seasonRepo := memory.NewSeasonRepository(memory.SeedRules())
	raceRepo := memory.NewRaceRepository(memory.SeedRaces(), memory.SeedDriverOffers(), memory.SeedResults())
	championshipRepo := memory.NewChampionshipRepository(memory.SeedChampionships(), memory.SeedParticipants(), memory.SeedAdmins())
	lineupRepo := memory.NewLineupRepository(raceRepo, memory.SeedLineups())

	rules := usecase.NewRulesService(seasonRepo, logger)
	handler := NewHandler(
		rules,
		usecase.NewResultsService(raceRepo, rules, logger),
		usecase.NewLineupService(lineupRepo, raceRepo, championshipRepo, rules, logger),
		usecase.NewStandingsService(raceRepo, championshipRepo, lineupRepo, rules, logger, 2),
		usecase.NewRequestContextFactory(championshipRepo),
		logger,
	)
	verifier := stubVerifier{
		"admin-token": {UserID: memory.UserIDAdmin, Username: "admin", IsSuperAdmin: true},
		"marta-token": {UserID: memory.UserIDMarta, Username: "marta"},
		"kenji-token": {UserID: memory.UserIDKenji, Username: "kenji"},
	}
	return NewRouter(handler, verifier, logger)
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	require.Equal(t, "2.0", envelope["apiVersion"])
	return rec.Code, envelope
}

func errorLocation(t *testing.T, envelope map[string]any) string {
	t.Helper()

	errObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok, "expected error object")
	items, ok := errObj["errors"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, items)
	location, _ := items[0].(map[string]any)["location"].(string)
	return location
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["data"].(map[string]any)["status"])
}

func TestRouter_RaceStandings(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/championships/1/races/1/standings", "", "")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	lineups := data["lineups"].([]any)
	require.Len(t, lineups, 2)
	first := lineups[0].(map[string]any)
	require.EqualValues(t, 1, first["user_id"])
	require.EqualValues(t, 435, first["points"])
	require.EqualValues(t, 1, first["rank"])
}

func TestRouter_ChampionshipStandingsWithUserSummary(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/championships/1/standings?user_id=3", "", "")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	require.Len(t, data["standings"].([]any), 3)
	leader := data["standings"].([]any)[0].(map[string]any)
	require.Equal(t, "admin", leader["username"])
	require.EqualValues(t, 25, leader["points"])
	require.EqualValues(t, 3, data["user"].(map[string]any)["user_id"])

	status, body = doRequest(t, router, http.MethodGet, "/v1/championships/1/standings?user_id=404", "", "")
	require.Equal(t, http.StatusOK, status)
	outsider := body["data"].(map[string]any)["user"].(map[string]any)
	require.EqualValues(t, 404, outsider["user_id"])
	require.EqualValues(t, 4, outsider["position"])
	require.EqualValues(t, 0, outsider["points"])
}

func TestRouter_SaveLineup(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		path         string
		body         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "valid lineup at budget",
			token:      "kenji-token",
			path:       "/v1/championships/1/races/1/lineup",
			body:       `{"drivers":[1,2,3,4,5],"drs_enabled":true}`,
			wantStatus: http.StatusOK,
		},
		{
			name:         "over budget",
			token:        "kenji-token",
			path:         "/v1/championships/1/races/1/lineup",
			body:         `{"drivers":[1,2,3,4,5,10]}`,
			wantStatus:   http.StatusBadRequest,
			wantLocation: "total_cost",
		},
		{
			name:         "duplicate driver",
			token:        "kenji-token",
			path:         "/v1/championships/1/races/1/lineup",
			body:         `{"drivers":[4,4]}`,
			wantStatus:   http.StatusBadRequest,
			wantLocation: "drivers",
		},
		{
			name:         "non positive driver id",
			token:        "kenji-token",
			path:         "/v1/championships/1/races/1/lineup",
			body:         `{"drivers":[0]}`,
			wantStatus:   http.StatusBadRequest,
			wantLocation: "drivers",
		},
		{
			name:         "bad race id",
			token:        "kenji-token",
			path:         "/v1/championships/1/races/abc/lineup",
			body:         `{"drivers":[1]}`,
			wantStatus:   http.StatusBadRequest,
			wantLocation: "race_id",
		},
		{
			name:       "unknown championship",
			token:      "kenji-token",
			path:       "/v1/championships/42/races/1/lineup",
			body:       `{"drivers":[1]}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown field",
			token:      "kenji-token",
			path:       "/v1/championships/1/races/1/lineup",
			body:       `{"drivers":[1],"captain":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anonymous",
			path:       "/v1/championships/1/races/1/lineup",
			body:       `{"drivers":[1]}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			token:      "stolen",
			path:       "/v1/championships/1/races/1/lineup",
			body:       `{"drivers":[1]}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			status, body := doRequest(t, router, http.MethodPut, tt.path, tt.token, tt.body)
			require.Equal(t, tt.wantStatus, status, body)
			if tt.wantLocation != "" {
				require.Equal(t, tt.wantLocation, errorLocation(t, body))
			}
			if status == http.StatusOK {
				data := body["data"].(map[string]any)
				require.EqualValues(t, 250, data["total_cost"])
				require.EqualValues(t, 0, data["remaining"])
				require.Equal(t, true, data["drs_enabled"])
			}
		})
	}
}

func TestRouter_GetLineup(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/championships/1/races/1/lineup?user_id=2", "admin-token", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	require.EqualValues(t, 431, data["points"])
	require.EqualValues(t, 175, data["total_cost"])

	status, _ = doRequest(t, router, http.MethodGet, "/v1/championships/1/races/1/lineup?user_id=2", "kenji-token", "")
	require.Equal(t, http.StatusForbidden, status)

	status, body = doRequest(t, router, http.MethodGet, "/v1/championships/1/races/1/lineup", "kenji-token", "")
	require.Equal(t, http.StatusOK, status)
	_, hasData := body["data"]
	require.False(t, hasData, "missing lineup has no data")
}

func TestRouter_ReplaceResults(t *testing.T) {
	router := newTestRouter(t)
	payload := `{"results":[{"driver_id":5,"finish_position":1,"fastest_lap":true},{"driver_id":6,"dnf":true}]}`

	status, _ := doRequest(t, router, http.MethodPut, "/v1/races/2/results", "marta-token", payload)
	require.Equal(t, http.StatusForbidden, status)

	status, body := doRequest(t, router, http.MethodPut, "/v1/races/2/results", "admin-token", `{"results":[{"driver_id":5,"finish_position":0}]}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "results", errorLocation(t, body))

	status, body = doRequest(t, router, http.MethodPut, "/v1/races/2/results", "admin-token", payload)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	require.EqualValues(t, 2, data["stored"])
	top := data["driver_points"].([]any)[0].(map[string]any)
	require.EqualValues(t, 5, top["driver_id"])
	require.EqualValues(t, 151, top["total"])

	status, body = doRequest(t, router, http.MethodGet, "/v1/races/2/results", "", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"].([]any), 2)
}

func TestRouter_DriverPoints(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/races/1/driver-points", "", "")
	require.Equal(t, http.StatusOK, status)
	drivers := body["data"].(map[string]any)["drivers"].([]any)
	require.Len(t, drivers, 10)
	require.EqualValues(t, 150, drivers[0].(map[string]any)["total"])

	status, _ = doRequest(t, router, http.MethodGet, "/v1/races/99/driver-points", "", "")
	require.Equal(t, http.StatusNotFound, status)
}

func TestRouter_Rules(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/seasons/2026/rules", "", "")
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, body["data"].(map[string]any)["version"])

	payload := `{"finance_budget":"300","max_roster_size":5,"driver_finish_points":[100,80,60],"fastest_lap_bonus":2,"dnf_penalty":10,"ranking_points_table":[10,5]}`
	status, _ = doRequest(t, router, http.MethodPut, "/v1/seasons/2026/rules", "marta-token", payload)
	require.Equal(t, http.StatusForbidden, status)

	status, body = doRequest(t, router, http.MethodPut, "/v1/seasons/2026/rules", "admin-token", payload)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	require.EqualValues(t, 2, data["version"])
	require.EqualValues(t, 300, data["finance_budget"])
	require.Equal(t, false, data["is_default"])

	status, body = doRequest(t, router, http.MethodPut, "/v1/seasons/2026/rules", "admin-token", `{"finance_budget":300,"max_roster_size":0,"driver_finish_points":[1],"ranking_points_table":[1]}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "max_roster_size", errorLocation(t, body))
}

func TestRouter_MyChampionships(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/me/championships", "marta-token", "")
	require.Equal(t, http.StatusOK, status)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "Paddock Club", item["name"])
	require.EqualValues(t, 2, item["position"])
	require.EqualValues(t, 18, item["points"])
}
