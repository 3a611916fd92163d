package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

// RequireRole gates a route on the caller's stored role. The email set by
// Auth is resolved against the user collection on every request; a missing
// account or a role other than the required one terminates with 403. A store
// failure is not an authorization verdict and propagates to the error
// handler instead.
func RequireRole(users ports.UserRepository, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
				return err
			}
			if user.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
