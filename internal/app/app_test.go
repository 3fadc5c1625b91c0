package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pool-league/internal/config"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	return config.Config{
		AppEnv:                config.EnvDev,
		ServiceName:           "pool-league-api",
		HTTPAddr:              "127.0.0.1:0",
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          5 * time.Second,
		LeagueDBPath:          filepath.Join(dir, "db", "league.db"),
		FantasyDBPath:         filepath.Join(dir, "db", "fantasy.db"),
		DBBusyTimeout:         time.Second,
		DBMigrateOnStart:      true,
		CacheEnabled:          true,
		CacheTTL:              time.Minute,
		CORSAllowedOrigins:    []string{"*"},
		AdminToken:            "admin",
		FantasyScoringWorkers: 2,
		MetricsEnabled:        true,
		LogLevel:              logging.LevelInfo,
	}
}

func TestNew_ServesFreshDatabases(t *testing.T) {
	a, err := New(testConfig(t), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/next-tournament-id?mode=doubles", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"mode":"doubles","nextTournamentId":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/end-game", strings.NewReader(
		`{"mode":"doubles","actions":[{"playerName":"alice","actionType":"Ball In","actionCount":2}]}`,
	)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/total-points?mode=doubles", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"alice":2}`, rec.Body.String())

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pool_league_end_games_total")
}

func TestNew_WithoutMetricsHidesEndpoint(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	cfg.CacheEnabled = false

	a, err := New(cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = ""

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
}
