package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	RoleName string `json:"role_name" validate:"required"`
}

type updateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	RoleName string `json:"role_name"`
}

// Create registers a new user under an existing role.
//
// @Summary      Create a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /user/post [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		RoleName: req.RoleName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// FindAll lists every user. Password hashes never serialize.
func (h *UserHandler) FindAll(c echo.Context) error {
	users, err := h.userService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// FindByEmail looks up a single user by exact email match.
func (h *UserHandler) FindByEmail(c echo.Context) error {
	user, err := h.userService.FindByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update partially updates the user addressed by the email query parameter.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), c.QueryParam("email"), ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		RoleName: req.RoleName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Delete removes the user addressed by the email query parameter.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.QueryParam("email")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
