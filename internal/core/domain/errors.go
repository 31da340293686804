package domain

import "errors"

// Authentication errors. ErrInvalidCredentials deliberately covers both
// "no such user" and "wrong password" so login failures cannot be used to
// enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Referential and authorization errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrRoleNotFound    = errors.New("role not found")
	ErrRoleExists      = errors.New("role already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("access forbidden")
	ErrValidation      = errors.New("invalid input")
)
