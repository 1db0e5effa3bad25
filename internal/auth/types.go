package auth

import (
	"context"

	"bookworm/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs the session token with the public user view.
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// UserStore keeps the handlers independent of the SQL layer.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash, profileImage string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePasswordHash(ctx context.Context, id models.UserID, newHash string) error
}
