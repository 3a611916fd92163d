package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/house-hunter/marketplace-api/internal/api/metrics"
	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

const bookingsCollection = "bookedHouses"

// BookingService implements the booking use cases.
type BookingService struct {
	repo       ports.BookingRepository
	activities ports.ActivityRecorder
	log        zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, activities ports.ActivityRecorder, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, activities: activities, log: log}
}

// Create persists a new booking for the renter.
func (s *BookingService) Create(ctx context.Context, b *domain.Booking) (string, error) {
	b.CreatedAt = time.Now().UTC()

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		s.log.Error().Err(err).Str("renter", b.RenterEmail).Msg("failed to create booking")
		return "", err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.activities.Record(ports.ActivityInput{
		Collection: bookingsCollection,
		Subject:    id,
		Action:     domain.ActionCreated,
		Actor:      b.RenterEmail,
		Timestamp:  b.CreatedAt,
	})
	s.log.Info().Str("booking_id", id).Str("renter", b.RenterEmail).Str("house_id", b.HouseID).Msg("booking created")
	return id, nil
}

// ListByRenter returns the renter's bookings joined with their listings.
func (s *BookingService) ListByRenter(ctx context.Context, email string) ([]domain.BookedHouse, int64, error) {
	return s.repo.FindByRenter(ctx, email)
}

// Delete removes a booking. The caller's houseRenter role is the only check;
// ownership of the specific booking is not verified.
func (s *BookingService) Delete(ctx context.Context, id, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activities.Record(ports.ActivityInput{
		Collection: bookingsCollection,
		Subject:    id,
		Action:     domain.ActionDeleted,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
	s.log.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}
