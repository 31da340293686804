package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/domain"
)

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	if role, ok := r.roles[id]; ok {
		return role, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindAll(context.Context) ([]domain.Role, error) { return nil, nil }
func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	return role, nil
}
func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	return role, nil
}
func (r *stubRoleRepo) Delete(context.Context, string) error { return nil }

type stubProductRepo struct {
	products []domain.Product
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByCategory(_ context.Context, category domain.Category) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindAll(context.Context) ([]domain.Product, error) {
	return r.products, nil
}
func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return p, nil
}
func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return p, nil
}
func (r *stubProductRepo) Delete(context.Context, string) error { return nil }

func readerRole() *stubRoleRepo {
	return &stubRoleRepo{roles: map[string]*domain.Role{
		"role_1": {
			ID:         "role_1",
			Name:       "VIEWER",
			Privileges: []domain.Privilege{domain.PrivilegeRead},
			Categories: []domain.Category{domain.CategoryFood},
		},
	}}
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, roleID string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(identityKey, domain.Identity{ID: "user_1", Email: "alice@example.com", RoleID: roleID})
	return c
}

func nextCounter(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func TestRequirePrivileges_Allows(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/", nil), rec, "role_1")

	called := false
	mw := RequirePrivileges(readerRole(), domain.PrivilegeRead)
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequirePrivileges_IntersectionSuffices(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/", nil), rec, "role_1")

	// READ is one of the required set; a single overlap grants access.
	called := false
	mw := RequirePrivileges(readerRole(), domain.PrivilegePost, domain.PrivilegeRead)
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequirePrivileges_Denies(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodDelete, "/", nil), rec, "role_1")

	mw := RequirePrivileges(readerRole(), domain.PrivilegePost, domain.PrivilegeDelete)
	err := mw(nextCounter(new(bool)))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequirePrivileges_EmptyRequirementAdmitsAnyIdentity(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/", nil), rec, "role_1")

	called := false
	mw := RequirePrivileges(readerRole())
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequirePrivileges_NoIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	mw := RequirePrivileges(readerRole(), domain.PrivilegeRead)
	err := mw(nextCounter(new(bool)))(c)
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestRequirePrivileges_UnknownRoleIsForbidden(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/", nil), rec, "ghost_role")

	mw := RequirePrivileges(readerRole(), domain.PrivilegeRead)
	err := mw(nextCounter(new(bool)))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unresolvable role, got %v", err)
	}
}

func TestRequireCategoryScope_BodyCategoryAllowed(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product/post", strings.NewReader(`{"name":"Apple","category":"FOOD"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := authedContext(e, req, rec, "role_1")

	called := false
	mw := RequireCategoryScope(readerRole(), &stubProductRepo{})
	handler := mw(func(c echo.Context) error {
		called = true
		// The gate must restore the body for the handler's bind.
		var body map[string]any
		if err := c.Bind(&body); err != nil {
			t.Fatalf("body not restored: %v", err)
		}
		if body["category"] != "FOOD" {
			t.Fatalf("unexpected body after restore: %+v", body)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireCategoryScope_BodyCategoryDenied(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product/post", strings.NewReader(`{"name":"Mouse","category":"TECHNOLOGY"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := authedContext(e, req, rec, "role_1")

	mw := RequireCategoryScope(readerRole(), &stubProductRepo{})
	err := mw(nextCounter(new(bool)))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireCategoryScope_ByNameAllowed(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/byname?name=Apple", nil)
	c := authedContext(e, req, rec, "role_1")

	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Apple", Category: domain.CategoryFood},
	}}

	called := false
	mw := RequireCategoryScope(readerRole(), products)
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireCategoryScope_ByNameNotFound(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/byname?name=Ghost", nil)
	c := authedContext(e, req, rec, "role_1")

	mw := RequireCategoryScope(readerRole(), &stubProductRepo{})
	err := mw(nextCounter(new(bool)))(c)
	// A nonexistent target is NotFound, never Forbidden: an authorization
	// denial must not leak existence information.
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRequireCategoryScope_AnyMatchIsEnough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/byname?name=Widget", nil)
	c := authedContext(e, req, rec, "role_1")

	// Two products share the name; only one is in scope. Permissive policy:
	// one in-scope match admits the request.
	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Widget", Category: domain.CategoryTechnology},
		{ID: "p2", Name: "Widget", Category: domain.CategoryFood},
	}}

	called := false
	mw := RequireCategoryScope(readerRole(), products)
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireCategoryScope_OutOfScopeDenied(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/byid?id=p1", nil)
	c := authedContext(e, req, rec, "role_1")

	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Mouse", Category: domain.CategoryTechnology},
	}}

	mw := RequireCategoryScope(readerRole(), products)
	err := mw(nextCounter(new(bool)))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireCategoryScope_ByCategory(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/bycategory?category=FOOD", nil)
	c := authedContext(e, req, rec, "role_1")

	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Apple", Category: domain.CategoryFood},
	}}

	called := false
	mw := RequireCategoryScope(readerRole(), products)
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireCategoryScope_NoTargetPasses(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/all", nil)
	c := authedContext(e, req, rec, "role_1")

	called := false
	mw := RequireCategoryScope(readerRole(), &stubProductRepo{})
	if err := mw(nextCounter(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireCategoryScope_UnknownRoleIsForbidden(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/all", nil)
	c := authedContext(e, req, rec, "ghost_role")

	mw := RequireCategoryScope(readerRole(), &stubProductRepo{})
	err := mw(nextCounter(new(bool)))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
