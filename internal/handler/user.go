package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/turf-booking/internal/config"
	"github.com/iliyamo/turf-booking/internal/repository"
)

// UserHandler serves the user mirror endpoints. The external auth
// provider owns the real credentials; these rows exist so bookings can
// resolve a registered user and dashboards can look up roles.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Cfg: cfg, Users: users}
}

type upsertUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Upsert handles POST /users. Registration replays are expected (the
// auth provider may re-send after a partial cleanup), so an existing
// email updates the name and password mirror instead of failing.
func (h *UserHandler) Upsert(c echo.Context) error {
	var req upsertUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	user, err := h.Users.Upsert(c.Request().Context(), req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	return c.JSON(http.StatusOK, user)
}

// GetByEmail handles GET /users/:email, used by the frontend for role
// resolution after login.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.Users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user"})
	}
	return c.JSON(http.StatusOK, user)
}

// List handles GET /users. The route sits behind JWT + admin role since
// it exposes every account to the admin dashboard.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch users"})
	}
	return c.JSON(http.StatusOK, users)
}
