package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
}

type registerUserResponse struct {
	Message    string `json:"message,omitempty"`
	InsertedID string `json:"insertedId,omitempty"`
	Inserted   bool   `json:"inserted"`
}

type roleResponse struct {
	Role string `json:"role"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// List handles GET /users with an optional exact email filter.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return fail(c, "Failed to fetch users", err)
	}
	return c.JSON(http.StatusOK, users)
}

// Role handles GET /users/role, the one endpoint allowing anonymous role
// discovery by email, used for client-side conditional rendering.
//
// @Summary      Look up a user's role
// @Tags         users
// @Produce      json
// @Param        email  query     string  true  "Account email"
// @Success      200    {object}  roleResponse
// @Failure      400    {object}  errorResponse
// @Router       /users/role [get]
func (h *UserHandler) Role(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return badRequest(c, "Email is required.")
	}

	role, err := h.service.Role(c.Request().Context(), email)
	if err != nil {
		return fail(c, "Failed to fetch user role", err)
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Register handles POST /users. Registration is idempotent: an email that
// already exists is a 200 no-op.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.Register(c.Request().Context(), &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return fail(c, "Failed to register user", err)
	}

	if !result.Inserted {
		return c.JSON(http.StatusOK, registerUserResponse{
			Message:  "User Already Exists",
			Inserted: false,
		})
	}
	return c.JSON(http.StatusOK, registerUserResponse{
		InsertedID: result.InsertedID,
		Inserted:   true,
	})
}

// SetRole handles PUT /users/role/:id (admin only, enforced by the router).
func (h *UserHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	res, err := h.service.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid id")
		}
		return fail(c, "Failed to update user role", err)
	}
	return c.JSON(http.StatusOK, res)
}
