package anubis

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"github.com/riskibarqy/fantasy-formula/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg Config) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	cfg.IntrospectPath = "/v1/auth/introspect"
	return NewClient(cfg, logging.NewNop())
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func TestClientVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Errorf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Errorf("unexpected token value: %s", req["token"])
		}

		writeJSON(w, map[string]any{
			"active":   true,
			"user_id":  7,
			"username": "marta",
			"roles":    []string{"player", "super_admin"},
		})
	}, Config{AdminKey: "admin-secret"})

	principal, err := client.VerifyAccessToken(t.Context(), "token-abc")
	require.NoError(t, err)
	require.Equal(t, fantasy.UserID(7), principal.UserID)
	require.Equal(t, "marta", principal.Username)
	require.True(t, principal.IsSuperAdmin)
}

func TestClientVerifyAccessToken_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "inactive token",
			handler: func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, map[string]any{"active": false}) },
			wantErr: usecase.ErrUnauthorized,
		},
		{
			name:    "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			wantErr: usecase.ErrUnauthorized,
		},
		{
			name:    "forbidden admin key",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusForbidden) },
			wantErr: usecase.ErrDependencyUnavailable,
		},
		{
			name:    "upstream error",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			wantErr: usecase.ErrDependencyUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, tt.handler, Config{})
			_, err := client.VerifyAccessToken(t.Context(), "token")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, logging.NewNop())
	_, err := client.VerifyAccessToken(t.Context(), "  ")
	require.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestClientVerifyAccessToken_UsesPrincipalCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, map[string]any{"active": true, "user_id": 3, "username": "kenji"})
	}, Config{CacheTTL: time.Minute})

	for range 3 {
		principal, err := client.VerifyAccessToken(t.Context(), "cached-token")
		require.NoError(t, err)
		require.Equal(t, fantasy.UserID(3), principal.UserID)
		require.False(t, principal.IsSuperAdmin)
	}
	require.EqualValues(t, 1, calls.Load())
}

func TestClientVerifyAccessToken_CircuitOpensOnUpstreamFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, Config{CircuitBreaker: resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}})

	for range 4 {
		_, err := client.VerifyAccessToken(t.Context(), "token")
		require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	}
	require.EqualValues(t, 2, calls.Load(), "open circuit short-circuits later calls")
}

func TestClientVerifyAccessToken_RejectedTokensDoNotTripCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}, Config{CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1}})

	for range 3 {
		_, err := client.VerifyAccessToken(t.Context(), "bad")
		require.ErrorIs(t, err, usecase.ErrUnauthorized)
	}
	require.EqualValues(t, 3, calls.Load())
}

func TestBuildURL(t *testing.T) {
	require.Equal(t, "https://anubis.local/v1/auth/introspect", buildURL("https://anubis.local/", "v1/auth/introspect"))
	require.Equal(t, "https://other/introspect", buildURL("https://anubis.local", "https://other/introspect"))
	require.Equal(t, "https://anubis.local", buildURL("https://anubis.local/", ""))
}
