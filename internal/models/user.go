package models

import "time"

// UserID is an opaque user identifier (uuid in storage).
type UserID string

type User struct {
	ID           UserID
	Username     string
	Email        string
	PasswordHash string
	ProfileImage string
	CreatedAt    time.Time
}

// PublicUser is the shape safe to return to clients.
type PublicUser struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}
