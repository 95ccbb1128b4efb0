package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
	"github.com/mergington/activities/internal/service"
)

// ============================================================================
// Application Wiring
// ============================================================================

// App bundles a fully wired application instance with its backing store,
// so tests can drive the HTTP surface and inspect state underneath.
type App struct {
	Handler http.Handler
	Repo    *repository.ActivityRepository
	Hub     *service.RosterHub
}

// NewApp wires a complete application against a freshly seeded in-memory
// store, mirroring the production wiring in cmd/server. Background
// goroutines are stopped via t.Cleanup.
func NewApp(t *testing.T) *App {
	t.Helper()
	return NewAppWithStatic(t, "web/static")
}

// NewAppWithStatic is NewApp with a custom static asset directory.
func NewAppWithStatic(t *testing.T, staticDir string) *App {
	t.Helper()

	repo := repository.NewActivityRepository(repository.Seed())

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   1000,
		Window: time.Minute,
		Burst:  100,
	})
	t.Cleanup(rateLimiter.Stop)

	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     time.Hour,
		Cleanup: time.Hour,
	})
	t.Cleanup(idempotencyStore.Stop)

	hub := service.NewRosterHub()
	t.Cleanup(hub.Close)

	activityService := service.NewActivityService(service.ActivityServiceConfig{
		Repo: repo,
		Hub:  hub,
	})

	activityHandler := handler.NewActivityHandler(activityService)
	eventsHandler := handler.NewEventsHandler(hub)
	healthHandler := handler.NewHealthHandler(activityService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /activities", activityHandler.List)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityHandler.Signup)
	mux.HandleFunc("DELETE /activities/{activityName}/unregister", activityHandler.Unregister)
	mux.HandleFunc("GET /activities/stream", eventsHandler.Stream)
	mux.HandleFunc("GET /{$}", handler.RootRedirect)
	mux.Handle("GET /static/", handler.StaticFiles(staticDir))

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS([]string{"*"}),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	return &App{
		Handler: wrapped,
		Repo:    repo,
		Hub:     hub,
	}
}

// NewServer starts an httptest.Server around a fully wired application.
// The server is closed via t.Cleanup.
func NewServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(NewApp(t).Handler)
	t.Cleanup(srv.Close)
	return srv
}

// ============================================================================
// URL Helpers
// ============================================================================

// SignupPath builds the signup URL for an activity, escaping names with
// spaces and email addresses.
func SignupPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
}

// UnregisterPath builds the unregister URL for an activity.
func UnregisterPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/unregister?email=" + url.QueryEscape(email)
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// DecodeResponse decodes the response body into the given struct
func DecodeResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// DecodeDetail extracts the detail string from an error response body
func DecodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()

	var apiErr model.APIError
	DecodeResponse(t, resp, &apiErr)
	return apiErr.Detail
}

// DecodeMessage extracts the message string from a success response body
func DecodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var msg model.MessageResponse
	DecodeResponse(t, resp, &msg)
	return msg.Message
}

// DecodeActivities decodes the activity catalog returned by GET /activities
func DecodeActivities(t *testing.T, resp *http.Response) map[string]*model.Activity {
	t.Helper()

	var activities map[string]*model.Activity
	DecodeResponse(t, resp, &activities)
	return activities
}
