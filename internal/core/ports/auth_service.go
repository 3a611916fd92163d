package ports

import (
	"context"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// AuthService implements registration and login.
type AuthService interface {
	// Register hashes the password and persists the account, returning the
	// inserted identifier. Fails with domain.ErrEmailInUse when the email is
	// already registered.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// Login returns the stored account record, hash included. Fails with
	// domain.ErrUserNotFound or domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
