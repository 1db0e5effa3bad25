package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"bookworm/internal/api/httpx"
)

// Recovery converts handler panics into a generic 500 without leaking detail.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				rid := GetRequestID(r)
				if rid == "" {
					rid = "unknown"
				}

				log.Printf("[PANIC] RequestID=%s %s %s: %v\n%s",
					rid, r.Method, r.URL.Path, err, debug.Stack())

				httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
