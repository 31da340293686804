package domain

import "time"

// User models an authenticated actor in the system. PasswordHash is the
// bcrypt digest of the password and never leaves the process.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       string    `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped view of a verified access token. It lives
// only for the duration of one request and carries no privileges itself;
// authorization re-resolves the role from the store on every check.
type Identity struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	RoleID string `json:"role_id"`
}
