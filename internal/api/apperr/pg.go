package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation reports whether err is a Postgres unique_violation
// (SQLSTATE 23505) and, if so, the name of the violated constraint.
// Uniqueness is enforced by the database, so a single INSERT is enough
// to detect duplicate identities without a read-then-write race.
func UniqueViolation(err error) (constraint string, ok bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return "", false
	}
	if pg.Code != "23505" {
		return "", false
	}
	return pg.ConstraintName, true
}

// IsForeignKeyViolation reports SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23503"
}

// IsInvalidTextRepresentation reports SQLSTATE 22P02 (e.g. a malformed uuid
// arriving as a path parameter).
func IsInvalidTextRepresentation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "22P02"
}
