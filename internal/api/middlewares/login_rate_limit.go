package middlewares

import (
	"context"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookworm/internal/api/httpx"

	"github.com/redis/go-redis/v9"
)

// AttemptCounter is the slice of the Redis client the limiter needs.
// *redis.Client satisfies it.
type AttemptCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// LoginRateLimit caps credential attempts per client IP using Redis counters.
// Fails open when Redis is not configured or the IP cannot be determined.
func LoginRateLimit(rdb AttemptCounter, next http.Handler) http.Handler {
	// Defaults: 10 attempts per 5 minutes
	max := envInt("LOGIN_MAX_ATTEMPTS", 10)
	win := envDur("LOGIN_WINDOW", "5m")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if ip == "" || rdb == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.Background()
		key := "rl:login:" + ip

		// INCR and set TTL if new
		n, err := rdb.Incr(ctx, key).Result()
		if err == nil && n == 1 {
			_ = rdb.Expire(ctx, key, win).Err()
		}
		if err == nil && n > int64(max) {
			w.Header().Set("Retry-After", strconv.Itoa(int(win.Seconds())))
			httpx.Error(w, http.StatusTooManyRequests, "Too many attempts, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may have a list: client, proxy1, proxy2...
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(k, def string) time.Duration {
	s := def
	if v := os.Getenv(k); v != "" {
		s = v
	}
	d, _ := time.ParseDuration(s)
	return d
}
