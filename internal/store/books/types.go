package books

import (
	"bookworm/internal/models"
)

// Owner is the slice of the user record joined into listings.
type Owner struct {
	ID           models.UserID `json:"id"`
	Username     string        `json:"username"`
	ProfileImage string        `json:"profileImage"`
}

// BookWithOwner is a book row with its owner joined in.
type BookWithOwner struct {
	models.Book
	Owner Owner
}
