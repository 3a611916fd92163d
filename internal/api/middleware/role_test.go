package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.users[user.Email] = user
	return user.Email, nil
}

func newRoleContext(e *echo.Echo, email string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", email)
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"o@x.com": {Email: "o@x.com", Role: domain.RoleHouseOwner},
	}}
	c, rec := newRoleContext(e, "o@x.com")

	called := false
	handler := RequireRole(repo, domain.RoleHouseOwner)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"r@x.com": {Email: "r@x.com", Role: domain.RoleHouseRenter},
	}}
	c, rec := newRoleContext(e, "r@x.com")

	handler := RequireRole(repo, domain.RoleHouseOwner)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_UnknownUser(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	c, rec := newRoleContext(e, "ghost@x.com")

	handler := RequireRole(repo, domain.RoleHouseRenter)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

type failingUserRepo struct {
	err error
}

func (r *failingUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, r.err
}

func (r *failingUserRepo) Create(_ context.Context, _ *domain.User) (string, error) {
	return "", r.err
}

func TestRequireRole_StoreFailurePropagates(t *testing.T) {
	e := echo.New()
	storeErr := errors.New("connection reset")
	repo := &failingUserRepo{err: storeErr}
	c, rec := newRoleContext(e, "o@x.com")

	handler := RequireRole(repo, domain.RoleHouseOwner)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if rec.Code == http.StatusForbidden {
		t.Fatalf("store failure must not render 403")
	}
}

func TestRequireRole_MissingEmail(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(repo, domain.RoleHouseOwner)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
