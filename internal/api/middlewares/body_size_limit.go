package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

// BodySizeLimit caps request bodies (default 10MB, MAX_BODY_SIZE to change).
// Book images travel base64-encoded in the JSON body, so the cap bounds them.
func BodySizeLimit(next http.Handler) http.Handler {
	limit := int64(10 * 1024 * 1024)

	if envLimit := os.Getenv("MAX_BODY_SIZE"); envLimit != "" {
		if parsed, err := strconv.ParseInt(envLimit, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
