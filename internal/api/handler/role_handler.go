package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// createRoleRequest requires both sets to be present; empty arrays are
// accepted, absent fields are not.
type createRoleRequest struct {
	Name       string             `json:"name" validate:"required"`
	Privileges []domain.Privilege `json:"privileges" validate:"required,dive,oneof=READ POST PATCH PUT DELETE"`
	Categories []domain.Category  `json:"categories" validate:"required,dive,oneof=FOOD TOOL SCHOOL PHARMACY TECHNOLOGY"`
}

type updateRoleRequest struct {
	Name       string             `json:"name"`
	Privileges []domain.Privilege `json:"privileges" validate:"omitempty,dive,oneof=READ POST PATCH PUT DELETE"`
	Categories []domain.Category  `json:"categories" validate:"omitempty,dive,oneof=FOOD TOOL SCHOOL PHARMACY TECHNOLOGY"`
}

// Create registers a new role with its privilege and category sets.
//
// @Summary      Create a role
// @Tags         role
// @Accept       json
// @Produce      json
// @Param        body  body      createRoleRequest  true  "Role definition"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /role/create [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Create(c.Request().Context(), ports.CreateRoleInput{
		Name:       req.Name,
		Privileges: req.Privileges,
		Categories: req.Categories,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) FindByID(c echo.Context) error {
	role, err := h.roleService.FindByID(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) FindByName(c echo.Context) error {
	role, err := h.roleService.FindByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) FindAll(c echo.Context) error {
	roles, err := h.roleService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Update partially updates the role addressed by the id query parameter.
func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Update(c.Request().Context(), c.QueryParam("id"), ports.UpdateRoleInput{
		Name:       req.Name,
		Privileges: req.Privileges,
		Categories: req.Categories,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.roleService.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
