package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mw "bookworm/internal/api/middlewares"

	"github.com/redis/go-redis/v9"
)

// fakeCounter counts attempts in memory the way the Redis INCR/EXPIRE pair
// would within a single window.
type fakeCounter struct {
	n       int64
	expires int
	err     error
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.n++
	return redis.NewIntResult(f.n, nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, _ time.Duration) *redis.BoolCmd {
	f.expires++
	return redis.NewBoolResult(true, nil)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoginRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	wrapped := mw.LoginRateLimit(nil, okHandler())

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected pass-through, got %d", i+1, rec.Code)
		}
	}
}

func TestLoginRateLimit_BlocksOverLimit(t *testing.T) {
	t.Setenv("LOGIN_MAX_ATTEMPTS", "2")
	t.Setenv("LOGIN_WINDOW", "5m")

	counter := &fakeCounter{}
	wrapped := mw.LoginRateLimit(counter, okHandler())

	attempt := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := attempt(); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := attempt()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past the limit, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
	if counter.expires != 1 {
		t.Fatalf("TTL should be set once per window, got %d", counter.expires)
	}
}

func TestLoginRateLimit_FailsOpenOnRedisError(t *testing.T) {
	t.Setenv("LOGIN_MAX_ATTEMPTS", "1")

	counter := &fakeCounter{err: context.DeadlineExceeded}
	wrapped := mw.LoginRateLimit(counter, okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected pass-through on redis error, got %d", i+1, rec.Code)
		}
	}
}
