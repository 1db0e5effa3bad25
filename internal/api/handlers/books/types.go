package books

import (
	"time"

	"bookworm/internal/models"
	storebooks "bookworm/internal/store/books"
)

type createRequest struct {
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Image   string `json:"image"` // base64 payload, optionally a data URI
	Rating  int    `json:"rating"`
}

// BookResponse is a single book owned by the caller.
type BookResponse struct {
	ID        models.BookID `json:"id"`
	Title     string        `json:"title"`
	Caption   string        `json:"caption"`
	Image     string        `json:"image"`
	Rating    int           `json:"rating"`
	User      models.UserID `json:"user"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ListedBook carries the owner's public fields joined in.
type ListedBook struct {
	ID        models.BookID    `json:"id"`
	Title     string           `json:"title"`
	Caption   string           `json:"caption"`
	Image     string           `json:"image"`
	Rating    int              `json:"rating"`
	User      storebooks.Owner `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
}

type listResponse struct {
	Books       []ListedBook `json:"books"`
	CurrentPage int          `json:"currentPage"`
	TotalBooks  int          `json:"totalBooks"`
	TotalPages  int          `json:"totalPages"`
}

func toBookResponse(b models.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Caption:   b.Caption,
		Image:     b.ImageURL,
		Rating:    b.Rating,
		User:      b.UserID,
		CreatedAt: b.CreatedAt,
	}
}

func toListedBook(bw storebooks.BookWithOwner) ListedBook {
	return ListedBook{
		ID:        bw.ID,
		Title:     bw.Title,
		Caption:   bw.Caption,
		Image:     bw.ImageURL,
		Rating:    bw.Rating,
		User:      bw.Owner,
		CreatedAt: bw.CreatedAt,
	}
}
