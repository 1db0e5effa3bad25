package middlewares

import (
	"context"

	"bookworm/internal/models"
)

const userKey ctxKey = 1

// WithUser attaches the resolved user to the request context.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the authenticated user placed by RequireAuth.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok && u.ID != ""
}
