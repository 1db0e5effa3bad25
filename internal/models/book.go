package models

import "time"

// BookID is an opaque book identifier (uuid in storage).
type BookID string

type Book struct {
	ID        BookID
	Title     string
	Caption   string
	ImageURL  string
	ImageKey  string // object key in the image store, kept so deletes never reparse the URL
	Rating    int
	UserID    UserID
	CreatedAt time.Time
}
