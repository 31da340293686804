package ports

import "context"

// TokenPair carries the two credentials issued at login: a short-lived
// access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService defines the authentication use-cases. Logout is a pure
// transport operation (cookie clearing) and has no service method: tokens
// stay cryptographically valid until their natural expiry.
type AuthService interface {
	// Login verifies the credentials and issues a fresh token pair. A wrong
	// password and an unknown email fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh verifies the refresh token, re-resolves the user and issues a
	// new access token carrying the user's current role. The refresh token
	// itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// LoginThrottle limits authentication attempts per account. Implementations
// are expected to be shared across instances (e.g. Redis-backed).
type LoginThrottle interface {
	// Hit records a failed attempt and reports whether the account is now
	// over the limit.
	Hit(ctx context.Context, email string) (bool, error)
	// Blocked reports whether the account is currently over the limit.
	Blocked(ctx context.Context, email string) (bool, error)
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
