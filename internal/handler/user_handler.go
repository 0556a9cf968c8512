package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textilerp/internal/model"
	"textilerp/internal/service"
)

// UserHandler handles user management endpoints. All routes are admin-gated
// by the router; the finer super-admin rules live in the service.
type UserHandler struct {
	userService service.UserService
	permService service.PermissionService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, permService service.PermissionService) *UserHandler {
	return &UserHandler{userService: userService, permService: permService}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin editor viewer"`
	Password string `json:"password" validate:"required,min=6"`
}

// List godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "New user"
// @Success 201 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	acting := CurrentUser(c)
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     model.Role(req.Role),
	}
	created, err := h.userService.Create(c.Request().Context(), actorFrom(c), acting.Role, user, req.Password)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UserPatch true "Fields to change"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	user, err := h.userService.Update(c.Request().Context(), actorFrom(c), CurrentUser(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), actorFrom(c), CurrentUser(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// GetPermissions godoc
// @Summary Effective capability set for a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} auth.CapabilitySet
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/permissions [get]
func (h *UserHandler) GetPermissions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	caps, err := h.permService.EffectiveForUser(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, caps)
}

// PutPermissions godoc
// @Summary Replace a user's permission override
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.PermissionOverride true "Full flag set"
// @Success 200 {object} model.PermissionOverride
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/permissions [put]
func (h *UserHandler) PutPermissions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var flags model.PermissionOverride
	if err := c.Bind(&flags); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	override, err := h.permService.SetOverride(c.Request().Context(), actorFrom(c), id, &flags)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, override)
}
