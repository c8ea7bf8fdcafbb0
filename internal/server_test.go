package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/status"
)

const backendDashboardJson = `{
	"todayCalories": 450,
	"labels": ["Mon","Tue","Wed","Thu","Fri","Sat","Sun"],
	"workoutDatasets": [{"label":"Cardio","data":[0,0,0,0,0,25,0]}],
	"calorieData": [0,0,0,0,0,450,0],
	"caloriesConsumed": [0,0,0,0,0,2100,0],
	"todayWater": 2.5,
	"sleepHistory": []
}`

func newTestServer(t *testing.T, backend http.HandlerFunc) *Server {
	t.Helper()

	mr := miniredis.RunT(t)
	redisHost, redisPort, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	backendServer := httptest.NewServer(backend)
	t.Cleanup(backendServer.Close)

	cfg := &config.Config{
		Environment:            "dev",
		Host:                   "localhost",
		Port:                   9000,
		BackendURL:             backendServer.URL,
		BackendTimeout:         config.Duration{Duration: 2 * time.Second},
		RedisHost:              redisHost,
		RedisPort:              redisPort,
		SyntheticSeed:          config.DefaultSyntheticSeed,
		WeeklyCacheTTL:         config.Duration{Duration: time.Minute},
		AllowedOrigins:         []string{"http://localhost:8080"},
		RateLimitAllowedPerMin: 0, // no rate limiting
	}

	s, err := NewServer(context.Background(), NewServerParams{
		Config:      cfg,
		VersionInfo: "test-version",
	})
	require.NoError(t, err)
	t.Cleanup(s.GracefulShutdown)

	return s
}

func get(t *testing.T, router http.Handler, path, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if userID != "" {
		req.Header.Set(session.HeaderUserID, userID)
		req.Header.Set("Authorization", "Bearer tok")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestServer_DashboardLiveAndStatus(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/42/dashboard" || r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, backendDashboardJson)
	})
	router := s.routerSetup()

	rr := get(t, router, "/dashboard", "42")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "live", rr.Header().Get(dashboard.HeaderProvenance))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	var view struct {
		Stats dashboard.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, 450, view.Stats.Calories)
	assert.Equal(t, 900, view.Stats.Progress.Steps)
	assert.Equal(t, 1, view.Stats.Progress.ExerciseDays)

	rr = get(t, router, "/dashboard/status", "42")
	require.Equal(t, http.StatusOK, rr.Code)
	var entry status.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	assert.Equal(t, dashboard.ProvenanceLive, entry.Provenance)
	assert.Empty(t, entry.Cause)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metricsManager.CounterDashboardLoads.WithLabelValues("live")))
}

func TestServer_DashboardFallback(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	router := s.routerSetup()

	rr := get(t, router, "/dashboard", "42")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "synthetic", rr.Header().Get(dashboard.HeaderProvenance))

	rr = get(t, router, "/dashboard/status", "42")
	require.Equal(t, http.StatusOK, rr.Code)
	var entry status.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	assert.Equal(t, dashboard.ProvenanceSynthetic, entry.Provenance)
	assert.Contains(t, entry.Cause, "status 500")

	// anonymous users get synthetic stats and no recorded status
	rr = get(t, router, "/dashboard", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "synthetic", rr.Header().Get(dashboard.HeaderProvenance))
	assert.Equal(t, http.StatusNotFound, get(t, router, "/dashboard/status", "43").Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metricsManager.CounterLiveFailures.WithLabelValues("status")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metricsManager.CounterDashboardLoads.WithLabelValues("synthetic")))
}

func TestServer_MiscRoutes(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	router := s.routerSetup()

	rr := get(t, router, "/version", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())

	rr = get(t, router, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"redis":"ok"}`, rr.Body.String())

	assert.Equal(t, http.StatusOK, get(t, router, "/dashboard/demo?seed=5", "").Code)
	assert.Equal(t, http.StatusBadGateway, get(t, router, "/analytics/weekly", "42").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/nope", "").Code)
}
