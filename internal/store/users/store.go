package users

import (
	"context"
	"database/sql"
	"errors"

	"bookworm/internal/api/apperr"
	"bookworm/internal/models"
)

type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store { return &Store{DB: db} }

const userCols = `id::text, username, email, password_hash, profile_image, created_at`

// Create inserts a user and relies on the users_email_key / users_username_key
// constraints for uniqueness, so concurrent registrations cannot both win.
func (s *Store) Create(ctx context.Context, username, email, passwordHash, profileImage string) (models.User, error) {
	const q = `
		INSERT INTO users (username, email, password_hash, profile_image)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userCols + `;
	`
	u, err := scanUser(s.DB.QueryRowContext(ctx, q, username, email, passwordHash, profileImage))
	if err != nil {
		if constraint, ok := apperr.UniqueViolation(err); ok {
			switch constraint {
			case "users_email_key":
				return models.User{}, ErrEmailTaken
			case "users_username_key":
				return models.User{}, ErrUsernameTaken
			}
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE email = $1 LIMIT 1;`
	return s.findOne(ctx, q, email)
}

func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE username = $1 LIMIT 1;`
	return s.findOne(ctx, q, username)
}

func (s *Store) FindByID(ctx context.Context, id models.UserID) (models.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE id = $1 LIMIT 1;`
	return s.findOne(ctx, q, string(id))
}

func (s *Store) UpdatePasswordHash(ctx context.Context, id models.UserID, newHash string) error {
	const q = `UPDATE users SET password_hash = $1 WHERE id = $2;`
	_, err := s.DB.ExecContext(ctx, q, newHash, string(id))
	return err
}

func (s *Store) findOne(ctx context.Context, q string, arg any) (models.User, error) {
	u, err := scanUser(s.DB.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) || apperr.IsInvalidTextRepresentation(err) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfileImage, &u.CreatedAt)
	return u, err
}
