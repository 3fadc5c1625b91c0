package httpapi

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (o *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, recordedRequest{method: method, route: route, status: status})
}

func TestRequireAdminToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		value      string
		want       int
	}{
		{name: "open when not configured", configured: "", want: http.StatusOK},
		{name: "missing token", configured: "s3cret", want: http.StatusUnauthorized},
		{name: "wrong token", configured: "s3cret", header: adminTokenHeader, value: "guess", want: http.StatusUnauthorized},
		{name: "admin header", configured: "s3cret", header: adminTokenHeader, value: "s3cret", want: http.StatusOK},
		{name: "bearer header", configured: "s3cret", header: "Authorization", value: "Bearer s3cret", want: http.StatusOK},
		{name: "basic scheme rejected", configured: "s3cret", header: "Authorization", value: "Basic s3cret", want: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/addSeason", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			rec := httptest.NewRecorder()

			RequireAdminToken(tc.configured, next).ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequestMetrics_UsesRoutePattern(t *testing.T) {
	obs := &fakeObserver{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/fantasy/rosters/{playerID}/score", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := RequestMetrics(obs, mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fantasy/rosters/abc/score?tournamentId=3", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if len(obs.requests) != 2 {
		t.Fatalf("unexpected observation count: got=%d want=2", len(obs.requests))
	}
	first := obs.requests[0]
	if first.route != "GET /api/fantasy/rosters/{playerID}/score" || first.status != http.StatusTeapot {
		t.Fatalf("unexpected first observation: %+v", first)
	}
	if second := obs.requests[1]; second.route != "" || second.status != http.StatusNotFound {
		t.Fatalf("unexpected unmatched observation: %+v", second)
	}
}

func TestStatusWriter_DefaultsToOK(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder()}
	if _, err := sw.Write([]byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	sw.WriteHeader(http.StatusInternalServerError)

	if sw.Status() != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", sw.Status(), http.StatusOK)
	}
}
