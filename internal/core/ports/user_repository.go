package ports

import (
	"context"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new account and returns the generated identifier.
	// A duplicate email surfaces as domain.ErrEmailInUse.
	Create(ctx context.Context, user *domain.User) (string, error)
}
