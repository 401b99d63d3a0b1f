package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/youth-league/internal/platform/logging"
)

const consoleOrigin = "https://draft.youth-league.example"

// preflightRouter has no draft service behind it: any preflight that leaks
// past CORS panics and comes back as a 500.
func preflightRouter(origins ...string) http.Handler {
	logger := logging.NewNop()
	return NewRouter(NewHandler(nil, logger), NewFeed(nil, nil, nil, nil, logger), logger, origins)
}

func TestCORS_PreflightOnDraftRoutes(t *testing.T) {
	router := preflightRouter(consoleOrigin)

	cases := []struct {
		name   string
		path   string
		method string
	}{
		{name: "resolve move", path: seedDraftPath + "/moves/resolve", method: http.MethodPost},
		{name: "remove player", path: seedDraftPath + "/managers/m1/players/p-1", method: http.MethodDelete},
		{name: "bind team", path: seedDraftPath + "/managers/m1/team", method: http.MethodPut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tc.path, nil)
			req.Header.Set("Origin", consoleOrigin)
			req.Header.Set("Access-Control-Request-Method", tc.method)
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != consoleOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if got := rec.Header().Get("Vary"); got != "Origin" {
				t.Fatalf("expected Vary: Origin for a listed origin, got %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, tc.method) {
				t.Fatalf("expected %s in allowed methods, got %q", tc.method, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Content-Type") {
				t.Fatalf("expected Content-Type in allowed headers, got %q", got)
			}
		})
	}
}

func TestCORS_FeedPreflightFromUnlistedDisplay(t *testing.T) {
	router := preflightRouter(consoleOrigin)

	req := httptest.NewRequest(http.MethodOptions, seedDraftPath+"/feed", nil)
	req.Header.Set("Origin", "https://gym-scoreboard.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	for _, header := range []string{"Access-Control-Allow-Origin", "Access-Control-Allow-Methods"} {
		if got := rec.Header().Get(header); got != "" {
			t.Fatalf("expected no %s for an unlisted origin, got %q", header, got)
		}
	}
}

func TestCORS_WildcardOnLiveSession(t *testing.T) {
	h := newAPIHarness(t, 1)
	h.mustDo(t, http.MethodPost, seedDraftPath, "")

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, h.server.URL+seedDraftPath, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Origin", consoleOrigin)
	resp, err := h.server.Client().Do(req)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
	if got := resp.Header.Get("Vary"); got != "" {
		t.Fatalf("wildcard responses must not vary on origin, got %q", got)
	}
}
