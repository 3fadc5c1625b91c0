package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

func TestMetrics_RecordsDomainEvents(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.EndGameRecorded(scoring.ModeSingles, 5, 2)
	m.EndGameRecorded(scoring.ModeSingles, 3, 0)
	m.FantasyMatchupScored(scoring.ModeDoubles)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	if got := testutil.ToFloat64(m.endGames.WithLabelValues("singles")); got != 2 {
		t.Fatalf("unexpected end games: got=%v want=2", got)
	}
	if got := testutil.ToFloat64(m.actionsRecorded.WithLabelValues("singles")); got != 8 {
		t.Fatalf("unexpected actions: got=%v want=8", got)
	}
	if got := testutil.ToFloat64(m.fantasyScored.WithLabelValues("doubles")); got != 1 {
		t.Fatalf("unexpected fantasy scored: got=%v want=1", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")); got != 2 {
		t.Fatalf("unexpected cache misses: got=%v want=2", got)
	}
}

func TestMetrics_HandlerExposesHTTPSeries(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveHTTP(http.MethodGet, "GET /players", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `pool_league_http_requests_total{method="GET",route="GET /players",status="200"} 1`) {
		t.Fatalf("missing request series in:\n%s", body)
	}
}

func TestMetrics_NilIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.EndGameRecorded(scoring.ModeSingles, 1, 1)
	m.FantasyMatchupScored(scoring.ModeSingles)
	m.CacheLookup(true)
	m.ObserveHTTP(http.MethodGet, "", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}
