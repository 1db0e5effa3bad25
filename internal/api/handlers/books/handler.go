package books

import (
	"context"

	"bookworm/internal/models"
	storebooks "bookworm/internal/store/books"
)

// Store is the slice of the book store these handlers need.
type Store interface {
	Create(ctx context.Context, b models.Book) (models.Book, error)
	List(ctx context.Context, limit, offset int) ([]storebooks.BookWithOwner, int, error)
	ListByOwner(ctx context.Context, userID models.UserID) ([]models.Book, error)
	GetByID(ctx context.Context, id models.BookID) (models.Book, error)
	Delete(ctx context.Context, id models.BookID) error
}

// Images is the external image host.
type Images interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Handler struct {
	Store  Store
	Images Images
}

func New(store Store, images Images) *Handler {
	return &Handler{Store: store, Images: images}
}
