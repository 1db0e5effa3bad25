package books

import (
	"context"
	"database/sql"
	"errors"

	"bookworm/internal/api/apperr"
	"bookworm/internal/models"
)

func (s *Store) GetByID(ctx context.Context, id models.BookID) (models.Book, error) {
	const q = `
SELECT id::text, title, caption, image_url, image_key, rating, user_id::text, created_at
FROM books
WHERE id = $1
LIMIT 1`
	var b models.Book
	err := s.DB.QueryRowContext(ctx, q, string(id)).Scan(
		&b.ID, &b.Title, &b.Caption, &b.ImageURL, &b.ImageKey, &b.Rating, &b.UserID, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) || apperr.IsInvalidTextRepresentation(err) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	return b, nil
}
