package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

// UserHandler serves the public profile lookup.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Get returns the stored account record for an email, password hash
// included. An unknown email renders a 200 with a JSON null body rather
// than a 404, which is what the original server does.
//
// @Summary      Look up a user by email
// @Tags         users
// @Produce      json
// @Param        userEmail  path  string  true  "Account email"
// @Success      200  {object}  domain.User
// @Failure      500  {object}  messageResponse
// @Router       /users/{userEmail} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.FindByEmail(c.Request().Context(), c.Param("userEmail"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, user)
}
