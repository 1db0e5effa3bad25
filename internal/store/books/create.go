package books

import (
	"context"

	"bookworm/internal/models"
)

// Create inserts a book and returns it with the generated id and timestamp.
func (s *Store) Create(ctx context.Context, b models.Book) (models.Book, error) {
	const q = `
		INSERT INTO books (title, caption, image_url, image_key, rating, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, created_at;
	`
	err := s.DB.QueryRowContext(ctx, q,
		b.Title, b.Caption, b.ImageURL, b.ImageKey, b.Rating, string(b.UserID),
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return models.Book{}, err
	}
	return b, nil
}
