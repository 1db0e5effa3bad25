package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bookworm/internal/api/httpx"
	"bookworm/internal/models"
	jwtutil "bookworm/internal/security/jwt"
)

// UserLoader resolves the user embedded in a verified token.
type UserLoader interface {
	FindByID(ctx context.Context, id models.UserID) (models.User, error)
}

// RequireAuth verifies the Bearer JWT, loads the user it names, and injects
// the user into the request context. Every failure mode gets the same
// generic 401; the cause is not disclosed to the client.
func RequireAuth(users UserLoader, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		tokenStr, err := bearer(raw)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := jwtutil.ParseAccess(tokenStr)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		u, err := users.FindByID(r.Context(), models.UserID(claims.Subject))
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := WithUser(r.Context(), u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearer(h string) (string, error) {
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", errors.New("no bearer")
	}
	return strings.TrimSpace(h[len("Bearer "):]), nil
}
