package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	resp := httptest.NewRecorder()

	CORS(ok).ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestCORSPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	resp := httptest.NewRecorder()

	CORS(ok).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func post(h http.Handler, addr string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	req.RemoteAddr = addr
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp.Code
}

func TestRateLimiterPerClient(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	h := limiter.Handler(ok)

	if post(h, "10.0.0.1:1000") != http.StatusOK || post(h, "10.0.0.1:1001") != http.StatusOK {
		t.Fatal("burst requests should pass")
	}
	if code := post(h, "10.0.0.1:1002"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := post(h, "10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("other client should not be limited, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/x", nil)
	req.RemoteAddr = "10.0.0.1:1003"
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("reads should bypass the limiter, got %d", resp.Code)
	}
}

func TestRateLimiterPrune(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }
	h := limiter.Handler(ok)

	post(h, "10.0.0.1:1")
	now = now.Add(10 * time.Minute)
	post(h, "10.0.0.2:1")

	if removed := limiter.Prune(5 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 pruned client, got %d", removed)
	}
	if code := post(h, "10.0.0.1:1"); code != http.StatusOK {
		t.Fatalf("pruned client should start with a fresh bucket, got %d", code)
	}
}
