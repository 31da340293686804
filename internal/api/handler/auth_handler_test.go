package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/api/middleware"
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

type stubAuthService struct {
	loginPair  ports.TokenPair
	loginErr   error
	refreshTok string
	refreshErr error

	gotEmail    string
	gotPassword string
	gotRefresh  string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.TokenPair, error) {
	s.gotEmail = email
	s.gotPassword = password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &s.loginPair, nil
}

func (s *stubAuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	s.gotRefresh = refreshToken
	return s.refreshTok, s.refreshErr
}

func newAuthTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsBothCookies(t *testing.T) {
	svc := &stubAuthService{loginPair: ports.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}}
	h := NewAuthHandler(svc, 15*time.Minute, 168*time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"elice"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if svc.gotEmail != "alice@example.com" || svc.gotPassword != "elice" {
		t.Fatalf("credentials not forwarded: %s / %s", svc.gotEmail, svc.gotPassword)
	}

	access := cookieByName(rec, middleware.AccessCookie)
	if access == nil {
		t.Fatalf("access cookie not set")
	}
	if access.Value != "access-token" || !access.HttpOnly {
		t.Fatalf("unexpected access cookie: %+v", access)
	}
	if access.MaxAge != int((15 * time.Minute).Seconds()) {
		t.Fatalf("access cookie max-age %d does not match token ttl", access.MaxAge)
	}

	refresh := cookieByName(rec, middleware.RefreshCookie)
	if refresh == nil {
		t.Fatalf("refresh cookie not set")
	}
	if refresh.Value != "refresh-token" || !refresh.HttpOnly {
		t.Fatalf("unexpected refresh cookie: %+v", refresh)
	}
	if refresh.MaxAge != int((168 * time.Hour).Seconds()) {
		t.Fatalf("refresh cookie max-age %d does not match token ttl", refresh.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, time.Minute, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if cookieByName(rec, middleware.AccessCookie) != nil {
		t.Fatalf("no cookie must be set on failed login")
	}
}

func TestAuthHandler_Login_RejectsBadPayload(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, time.Minute, time.Hour, false)

	cases := []string{
		`{"email":"not-an-email","password":"pw"}`,
		`{"email":"alice@example.com"}`,
		`{}`,
	}
	for _, body := range cases {
		c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login", body)
		err := h.Login(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
	if svc.gotEmail != "" {
		t.Fatalf("service must not be called on invalid payload")
	}
}

func TestAuthHandler_Refresh_SetsAccessCookie(t *testing.T) {
	svc := &stubAuthService{refreshTok: "new-access"}
	h := NewAuthHandler(svc, 15*time.Minute, 168*time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.RefreshCookie, Value: "refresh-token"})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if svc.gotRefresh != "refresh-token" {
		t.Fatalf("refresh token not forwarded: %q", svc.gotRefresh)
	}

	access := cookieByName(rec, middleware.AccessCookie)
	if access == nil || access.Value != "new-access" {
		t.Fatalf("access cookie not refreshed: %+v", access)
	}
	if refresh := cookieByName(rec, middleware.RefreshCookie); refresh != nil {
		t.Fatalf("refresh cookie must not be reissued")
	}
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	svc := &stubAuthService{refreshErr: domain.ErrMissingToken}
	h := NewAuthHandler(svc, time.Minute, time.Hour, false)

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/refresh", "")

	err := h.Refresh(c)
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if svc.gotRefresh != "" {
		t.Fatalf("expected empty refresh token forwarded, got %q", svc.gotRefresh)
	}
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Minute, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	for _, name := range []string{middleware.AccessCookie, middleware.RefreshCookie} {
		cookie := cookieByName(rec, name)
		if cookie == nil {
			t.Fatalf("%s cookie not cleared", name)
		}
		if cookie.Value != "" || cookie.MaxAge != -1 {
			t.Fatalf("%s cookie not expired: %+v", name, cookie)
		}
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Minute, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/profile", "")
	c.Set("identity", domain.Identity{ID: "user_1", Email: "alice@example.com", RoleID: "role_1"})

	if err := h.Profile(c); err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "alice@example.com") {
		t.Fatalf("identity missing from response: %s", body)
	}
}

func TestAuthHandler_Profile_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Minute, time.Hour, false)

	c, _ := newAuthTestContext(t, http.MethodGet, "/auth/profile", "")

	err := h.Profile(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
