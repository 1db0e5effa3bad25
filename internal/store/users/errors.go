package users

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already exists")
	ErrUsernameTaken = errors.New("username already exists")
)
