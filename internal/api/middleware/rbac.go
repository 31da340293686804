package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/api/metrics"
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

// maxPeekBody bounds how much request body the category gate will buffer
// while looking for a target category.
const maxPeekBody = 1 << 20

// RequirePrivileges enforces the privilege layer of the authorization gate.
// The required set is declared explicitly per route; an empty set admits any
// authenticated identity. The caller's role is re-resolved from the store on
// every check so privilege changes take effect without re-login.
func RequirePrivileges(roles ports.RoleRepository, required ...domain.Privilege) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrMissingToken
			}

			if len(required) == 0 {
				return next(c)
			}

			role, err := resolveRole(c, roles, identity)
			if err != nil {
				return err
			}

			if !role.HasPrivilege(required...) {
				metrics.AuthzDeniedTotal.WithLabelValues("privilege").Inc()
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireCategoryScope enforces the category layer of the authorization gate
// on product routes. The target category is taken from the request body for
// creates, or resolved from the product store for name/category/id addressed
// requests. A request that addresses no specific product passes; the
// privilege layer has already run.
//
// When the addressed product does not exist the gate fails with NotFound
// rather than Forbidden, so a denial never doubles as an existence oracle.
// Across a multi-product match the check is permissive: one in-scope product
// is enough.
func RequireCategoryScope(roles ports.RoleRepository, products ports.ProductRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrMissingToken
			}

			role, err := resolveRole(c, roles, identity)
			if err != nil {
				return err
			}

			allowed, err := categoryInScope(c, products, role)
			if err != nil {
				return err
			}
			if !allowed {
				metrics.AuthzDeniedTotal.WithLabelValues("category").Inc()
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}

// resolveRole looks up the identity's role. A role id that no longer exists
// is an authentication inconsistency and maps to Forbidden, not NotFound.
func resolveRole(c echo.Context, roles ports.RoleRepository, identity domain.Identity) (*domain.Role, error) {
	if identity.RoleID == "" {
		return nil, domain.ErrForbidden
	}
	role, err := roles.FindByID(c.Request().Context(), identity.RoleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	return role, nil
}

func categoryInScope(c echo.Context, products ports.ProductRepository, role *domain.Role) (bool, error) {
	ctx := c.Request().Context()

	// Create and update requests name their target category in the body.
	if category, ok := peekBodyCategory(c); ok {
		return role.HasCategory(category), nil
	}

	if name := c.QueryParam("name"); name != "" {
		matches, err := products.FindByName(ctx, name)
		if err != nil {
			return false, err
		}
		return anyInScope(matches, role)
	}

	if category := c.QueryParam("category"); category != "" {
		matches, err := products.FindByCategory(ctx, domain.Category(category))
		if err != nil {
			return false, err
		}
		return anyInScope(matches, role)
	}

	if id := c.QueryParam("id"); id != "" {
		product, err := products.FindByID(ctx, id)
		if err != nil {
			return false, err
		}
		return role.HasCategory(product.Category), nil
	}

	// No specific target (e.g. list all): nothing to scope against.
	return true, nil
}

func anyInScope(matches []domain.Product, role *domain.Role) (bool, error) {
	if len(matches) == 0 {
		return false, domain.ErrProductNotFound
	}
	for _, p := range matches {
		if role.HasCategory(p.Category) {
			return true, nil
		}
	}
	return false, nil
}

// peekBodyCategory reads the request body looking for a category field and
// restores the body so the handler can bind it again afterwards.
func peekBodyCategory(c echo.Context) (domain.Category, bool) {
	req := c.Request()
	if req.Body == nil {
		return "", false
	}

	buf, err := io.ReadAll(io.LimitReader(req.Body, maxPeekBody))
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(buf))
	if err != nil || len(buf) == 0 {
		return "", false
	}

	var body struct {
		Category domain.Category `json:"category"`
	}
	if err := json.Unmarshal(buf, &body); err != nil || body.Category == "" {
		return "", false
	}
	return body.Category, true
}
