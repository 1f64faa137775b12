package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bookstack/internal/response"
	"bookstack/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a partial user update. Passwords cannot be
// changed through this request.
type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Role        *string `json:"role" validate:"omitempty,oneof=buyer seller admin"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Address     *string `json:"address"`
	Budget      *string `json:"budget" validate:"omitempty,numeric"`
	Income      *string `json:"income" validate:"omitempty,numeric"`
}

func (r UpdateUserRequest) toInput() service.UpdateUserInput {
	input := service.UpdateUserInput{
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Address:     r.Address,
	}
	if r.Budget != nil {
		if d, err := decimal.NewFromString(*r.Budget); err == nil {
			input.Budget = &d
		}
	}
	if r.Income != nil {
		if d, err := decimal.NewFromString(*r.Income); err == nil {
			input.Income = &d
		}
	}
	return input
}

// List godoc
// @Summary List users (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, http.StatusOK, "Users retrieved successfully!", users)
}

// Get godoc
// @Summary Get a user by id (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, http.StatusOK, "User retrieved successfully!", user)
}

// Update godoc
// @Summary Update a user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, http.StatusOK, "User updated successfully!", user)
}

// Delete godoc
// @Summary Delete a user (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, http.StatusOK, "User deleted successfully!", nil)
}

// Profile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users/my-profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	id, err := requesterID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, http.StatusOK, "Profile retrieved successfully!", user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /users/my-profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := requesterID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Role changes are reserved for admins.
	input := req.toInput()
	input.Role = nil

	user, err := h.userService.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, http.StatusOK, "Profile updated successfully!", user)
}
