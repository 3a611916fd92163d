package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/house-hunter/marketplace-api/internal/api/metrics"
	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
	"github.com/house-hunter/marketplace-api/pkg/password"
)

// AuthService implements registration and login over the user collection.
type AuthService struct {
	users  ports.UserRepository
	hasher *password.Hasher
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *password.Hasher, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, log: log}
}

// Register checks for an existing account, hashes the password, and inserts
// the user. The existence check and insert are not atomic; the unique index
// on email catches the losing side of a concurrent duplicate registration and
// surfaces the same ErrEmailInUse.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		metrics.RegistrationsTotal.WithLabelValues("email_in_use").Inc()
		return "", domain.ErrEmailInUse
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	id, err := s.users.Create(ctx, &domain.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
		Phone:    in.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			metrics.RegistrationsTotal.WithLabelValues("email_in_use").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return "", err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("email", in.Email).Str("role", in.Role).Msg("user registered")
	return id, nil
}

// Login verifies the password against the stored hash and returns the full
// account record. No token is issued here; token issuance is a separate call.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if !s.hasher.Check(pass, user.Password) {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		s.log.Warn().Str("email", email).Msg("login with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", email).Msg("user logged in")
	return user, nil
}
