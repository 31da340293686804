package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/api/metrics"
	"github.com/invenco/inventory-system/internal/api/middleware"
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

// AuthHandler owns the cookie transport for the token pair. Token lifetimes
// and the Secure flag come from configuration so cookie max-age always
// matches token expiry.
type AuthHandler struct {
	authService ports.AuthService
	accessTTL   time.Duration
	refreshTTL  time.Duration
	secure      bool
}

func NewAuthHandler(authService ports.AuthService, accessTTL, refreshTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		secure:      secure,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and sets the token cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setCookie(c, middleware.AccessCookie, pair.AccessToken, h.accessTTL)
	h.setCookie(c, middleware.RefreshCookie, pair.RefreshToken, h.refreshTTL)

	return c.JSON(http.StatusOK, messageResponse{Message: "login successful"})
}

// Refresh exchanges a valid refresh cookie for a new access cookie. The
// refresh cookie itself is left untouched.
//
// @Summary      Refresh access token
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.RefreshCookie); err == nil {
		refreshToken = cookie.Value
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues(refreshResult(err)).Inc()
		return err
	}
	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()

	h.setCookie(c, middleware.AccessCookie, accessToken, h.accessTTL)

	return c.JSON(http.StatusOK, messageResponse{Message: "refreshed successfully"})
}

// Logout clears both cookies unconditionally. No server-side invalidation
// happens; an already issued access token stays valid until expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearCookie(c, middleware.AccessCookie)
	h.clearCookie(c, middleware.RefreshCookie)

	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}

// Profile returns the identity derived from the current access token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return c.JSON(http.StatusOK, identity)
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}

func refreshResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	default:
		return "error"
	}
}
