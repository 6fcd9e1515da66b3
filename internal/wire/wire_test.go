package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"product-catalog/internal/data/repository"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

// TestRateLimitSkipsHealthEndpoint pins the limiter to the API surface: with a
// budget of one request per window, /health stays available while a second API
// call from the same client is throttled.
func TestRateLimitSkipsHealthEndpoint(t *testing.T) {
	config := &utils.Config{
		RateLimit: utils.RateLimitConfig{Requests: 1, Window: time.Minute},
	}
	app := Wiring(&repository.Repository{}, config, nil, zap.NewNop())
	defer app.RateLimiter.Stop()

	get := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		return rec.Code
	}

	// Short suggestion terms return an empty list without touching storage.
	if code := get("/api/search/suggestions?term=x"); code != http.StatusOK {
		t.Fatalf("first API call status = %d, want 200", code)
	}
	if code := get("/api/search/suggestions?term=x"); code != http.StatusTooManyRequests {
		t.Errorf("second API call status = %d, want 429", code)
	}

	if code := get("/health"); code != http.StatusOK {
		t.Errorf("/health status = %d, want 200", code)
	}
	if code := get("/health"); code != http.StatusOK {
		t.Errorf("repeated /health status = %d, want 200", code)
	}
}
