package books

import (
	"context"
	"database/sql"

	"bookworm/internal/models"
	"bookworm/internal/store/dbx"
)

const ownerJoinedCols = `
  b.id::text, b.title, b.caption, b.image_url, b.image_key, b.rating, b.created_at,
  u.id::text, u.username, u.profile_image`

// List returns one page of books sorted by creation time descending, with the
// owner's public fields joined in, plus the total number of books. The count
// and the page read from the same transaction so they describe one snapshot.
// Limit and offset are passed through as given.
func (s *Store) List(ctx context.Context, limit, offset int) ([]BookWithOwner, int, error) {
	var (
		out   []BookWithOwner
		total int
	)
	err := dbx.WithinTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := countBooks(ctx, tx, &total); err != nil {
			return err
		}
		page, err := listPage(ctx, tx, limit, offset)
		if err != nil {
			return err
		}
		out = page
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func countBooks(ctx context.Context, g dbx.Getter, total *int) error {
	return g.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(total)
}

func listPage(ctx context.Context, q dbx.Queryer, limit, offset int) ([]BookWithOwner, error) {
	const query = `
SELECT` + ownerJoinedCols + `
FROM books b
JOIN users u ON u.id = b.user_id
ORDER BY b.created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := q.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookWithOwner{}
	for rows.Next() {
		var bw BookWithOwner
		if err := rows.Scan(
			&bw.ID, &bw.Title, &bw.Caption, &bw.ImageURL, &bw.ImageKey, &bw.Rating, &bw.CreatedAt,
			&bw.Owner.ID, &bw.Owner.Username, &bw.Owner.ProfileImage,
		); err != nil {
			return nil, err
		}
		bw.UserID = bw.Owner.ID
		out = append(out, bw)
	}
	return out, rows.Err()
}

// ListByOwner returns every book owned by userID, newest first, unpaginated.
func (s *Store) ListByOwner(ctx context.Context, userID models.UserID) ([]models.Book, error) {
	const q = `
SELECT id::text, title, caption, image_url, image_key, rating, user_id::text, created_at
FROM books
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, q, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Caption, &b.ImageURL, &b.ImageKey, &b.Rating, &b.UserID, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
