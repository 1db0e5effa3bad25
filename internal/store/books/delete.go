package books

import (
	"context"

	"bookworm/internal/api/apperr"
	"bookworm/internal/models"
)

// Delete removes a book row. A second delete of the same id reports
// ErrNotFound. Ownership is the caller's responsibility.
func (s *Store) Delete(ctx context.Context, id models.BookID) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, string(id))
	if apperr.IsInvalidTextRepresentation(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
