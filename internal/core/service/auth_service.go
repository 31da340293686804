package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
	"github.com/invenco/inventory-system/internal/pkg/token"
)

// AuthService implements login and refresh. Access and refresh tokens are
// signed by two independent codecs so one secret can never validate the
// other's tokens.
type AuthService struct {
	users    ports.UserRepository
	access   *token.Codec
	refresh  *token.Codec
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, access, refresh *token.Codec, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		access:   access,
		refresh:  refresh,
		throttle: throttle,
		logger:   logger,
	}
}

// Login verifies the credentials and issues a token pair. The externally
// visible error for an unknown email and a wrong password is the same
// ErrInvalidCredentials; only the internal log distinguishes the two.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			return nil, err
		}
		if blocked {
			s.logger.Warn().Str("email", email).Msg("login throttled")
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("login for unknown email")
			return nil, s.failedAttempt(ctx, email)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("email", email).Msg("login with wrong password")
		return nil, s.failedAttempt(ctx, email)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("throttle reset failed")
		}
	}

	accessToken, err := s.access.Issue(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.refresh.Issue(user.ID, "", "")
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh verifies the refresh token, confirms the subject still exists and
// issues a new access token carrying the user's current role, never the
// stale one from an earlier login. The refresh token is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrMissingToken
	}

	claims, err := s.refresh.Verify(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", err
	}

	accessToken, err := s.access.Issue(user.ID, user.Email, user.RoleID)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("access token refreshed")
	return accessToken, nil
}

// failedAttempt records a throttle hit and returns the generic credential
// error, upgraded to ErrTooManyAttempts once the limit is crossed.
func (s *AuthService) failedAttempt(ctx context.Context, email string) error {
	if s.throttle == nil {
		return domain.ErrInvalidCredentials
	}
	over, err := s.throttle.Hit(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("throttle hit failed")
		return domain.ErrInvalidCredentials
	}
	if over {
		return domain.ErrTooManyAttempts
	}
	return domain.ErrInvalidCredentials
}
