package ports

import (
	"context"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings.
type BookingRepository interface {
	// Create inserts a booking and returns the generated identifier.
	Create(ctx context.Context, b *domain.Booking) (string, error)
	// FindByRenter returns the renter's bookings joined with their listings,
	// plus the total count of the renter's bookings.
	FindByRenter(ctx context.Context, email string) ([]domain.BookedHouse, int64, error)
	// Delete removes the booking, failing with domain.ErrBookingNotFound when
	// no document matches.
	Delete(ctx context.Context, id string) error
}

// BookingService defines the booking use cases.
type BookingService interface {
	Create(ctx context.Context, b *domain.Booking) (string, error)
	ListByRenter(ctx context.Context, email string) ([]domain.BookedHouse, int64, error)
	Delete(ctx context.Context, id, actor string) error
}
