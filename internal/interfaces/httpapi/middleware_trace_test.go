package httpapi

import "testing"

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_DraftPaths(t *testing.T) {
	paths := []string{"/v1/drafts/u10/2026-spring", "/v1/drafts/u10/2026-spring/picks", "/"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_FeedPathsAreNotTraced(t *testing.T) {
	if shouldTraceRequest("/v1/drafts/u10/2026-spring/feed") {
		t.Fatalf("expected long-lived feed connections to be excluded from tracing")
	}
}
