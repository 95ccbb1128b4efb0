package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newIdempotencyHandler(store *IdempotencyStore, calls *atomic.Int32) http.Handler {
	return Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Signed up ana@mergington.edu for Chess Club"}`))
	}))
}

func signupRequest(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=ana@mergington.edu", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

// ============================================================================
// Replay Tests
// ============================================================================

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	var calls atomic.Int32
	handler := newIdempotencyHandler(store, &calls)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, signupRequest("retry-key-1"))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, signupRequest("retry-key-1"))

	if calls.Load() != 1 {
		t.Errorf("expected handler to run once, ran %d times", calls.Load())
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("expected replay marker header on second response")
	}
	if first.Header().Get("X-Idempotency-Replayed") != "" {
		t.Error("first response must not carry the replay marker")
	}
	if second.Code != first.Code {
		t.Errorf("replayed status %d differs from original %d", second.Code, first.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("replayed body %q differs from original %q", second.Body.String(), first.Body.String())
	}
}

func TestIdempotency_ReplaysErrorOutcomes(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	var calls atomic.Int32
	handler := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Student is already signed up"}`))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), signupRequest("retry-key-2"))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, signupRequest("retry-key-2"))

	if calls.Load() != 1 {
		t.Errorf("expected handler to run once, ran %d times", calls.Load())
	}
	if second.Code != http.StatusBadRequest {
		t.Errorf("expected replayed 400, got %d", second.Code)
	}
}

// ============================================================================
// Keying Tests
// ============================================================================

func TestIdempotency_ReplayKeepsFreshSingletonHeaders(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	// RequestID runs outside Idempotency, as in the production chain. Its
	// per-request header must not be duplicated or overwritten by the
	// cached copy on replay.
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Signed up ana@mergington.edu for Chess Club"}`))
	}), RequestID, Idempotency(store))

	first := httptest.NewRecorder()
	firstReq := signupRequest("header-key-1")
	firstReq.Header.Set("X-Request-ID", "first-id")
	handler.ServeHTTP(first, firstReq)

	second := httptest.NewRecorder()
	secondReq := signupRequest("header-key-1")
	secondReq.Header.Set("X-Request-ID", "second-id")
	handler.ServeHTTP(second, secondReq)

	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Fatal("expected second response to be a replay")
	}
	if got := second.Header().Values("X-Request-ID"); len(got) != 1 || got[0] != "second-id" {
		t.Errorf("expected single fresh request id, got %v", got)
	}
	if got := second.Header().Values("Content-Type"); len(got) != 1 {
		t.Errorf("expected Content-Type exactly once on replay, got %v", got)
	}
}

func TestCaptureWriter_UnwrapToUnderlying(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rr}
	if cw.Unwrap() != http.ResponseWriter(rr) {
		t.Error("captureWriter.Unwrap must return the wrapped writer")
	}
}

func TestIdempotency_DistinctKeysExecuteSeparately(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	var calls atomic.Int32
	handler := newIdempotencyHandler(store, &calls)

	handler.ServeHTTP(httptest.NewRecorder(), signupRequest("key-a"))
	handler.ServeHTTP(httptest.NewRecorder(), signupRequest("key-b"))

	if calls.Load() != 2 {
		t.Errorf("expected 2 executions for distinct keys, got %d", calls.Load())
	}
}

func TestIdempotency_SameKeyDifferentTarget_NotReplayed(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	var calls atomic.Int32
	handler := newIdempotencyHandler(store, &calls)

	handler.ServeHTTP(httptest.NewRecorder(), signupRequest("shared-key"))

	other := httptest.NewRequest(http.MethodPost, "/activities/Gym%20Class/signup?email=ana@mergington.edu", nil)
	other.Header.Set("Idempotency-Key", "shared-key")
	handler.ServeHTTP(httptest.NewRecorder(), other)

	if calls.Load() != 2 {
		t.Errorf("same key against a different target must execute, got %d calls", calls.Load())
	}
}

// ============================================================================
// Bypass Tests
// ============================================================================

func TestIdempotency_NoKey_AlwaysExecutes(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	var calls atomic.Int32
	handler := newIdempotencyHandler(store, &calls)

	handler.ServeHTTP(httptest.NewRecorder(), signupRequest(""))
	handler.ServeHTTP(httptest.NewRecorder(), signupRequest(""))

	if calls.Load() != 2 {
		t.Errorf("keyless requests must always execute, got %d calls", calls.Load())
	}
}

func TestIdempotency_NonPost_AlwaysExecutes(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{})
	defer store.Stop()

	var calls atomic.Int32
	handler := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=ana@mergington.edu", nil)
		req.Header.Set("Idempotency-Key", "delete-key")
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if calls.Load() != 2 {
		t.Errorf("non-POST requests must always execute, got %d calls", calls.Load())
	}
}

// ============================================================================
// Expiry Tests
// ============================================================================

func TestIdempotency_ExpiredEntryExecutesAgain(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{TTL: 10 * time.Millisecond, Cleanup: time.Hour})
	defer store.Stop()

	var calls atomic.Int32
	handler := newIdempotencyHandler(store, &calls)

	handler.ServeHTTP(httptest.NewRecorder(), signupRequest("expiring-key"))

	time.Sleep(20 * time.Millisecond)

	handler.ServeHTTP(httptest.NewRecorder(), signupRequest("expiring-key"))

	if calls.Load() != 2 {
		t.Errorf("expected re-execution after TTL expiry, got %d calls", calls.Load())
	}
}

func TestDropExpired_RemovesDeadEntries(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{TTL: 10 * time.Millisecond, Cleanup: time.Hour})
	defer store.Stop()

	store.put("dead", &idempotencyEntry{status: http.StatusOK})

	time.Sleep(20 * time.Millisecond)
	store.dropExpired()

	store.mu.RLock()
	_, exists := store.entries["dead"]
	store.mu.RUnlock()

	if exists {
		t.Error("expected expired entry to be dropped")
	}
}
