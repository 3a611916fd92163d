package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
	"github.com/house-hunter/marketplace-api/pkg/token"
)

// AuthHandler serves token issuance, registration, and login.
type AuthHandler struct {
	authService ports.AuthService
	tokens      *token.Manager
}

func NewAuthHandler(authService ports.AuthService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// Token signs the posted claims into a one-hour bearer token.
//
// @Summary      Issue a signed identity token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Claims, typically {email}"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) Token(c echo.Context) error {
	claims := map[string]any{}
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	signed, err := h.tokens.Issue(claims)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: signed})
}

// Register creates a new account.
//
// The 401 for a taken email is the documented contract, inconsistent as it
// is — do not "fix" it to 409.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User fields including password"
// @Success      200   {object}  insertAck
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	if !domain.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "role must be houseOwner or houseRenter"})
	}

	id, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, insertAck{Acknowledged: true, InsertedID: id})
}

// Login verifies credentials and returns the stored user record. Both
// unknown email and wrong password surface as 500 + message, preserving the
// original contract. No token is issued here.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, user)
}
