package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/house-hunter/marketplace-api/internal/api/metrics"
	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

const housesCollection = "houses"

// HouseService implements the listing use cases.
type HouseService struct {
	repo       ports.HouseRepository
	activities ports.ActivityRecorder
	log        zerolog.Logger
}

func NewHouseService(repo ports.HouseRepository, activities ports.ActivityRecorder, log zerolog.Logger) *HouseService {
	return &HouseService{repo: repo, activities: activities, log: log}
}

// Create persists a new listing for its owner.
func (s *HouseService) Create(ctx context.Context, h *domain.House) (string, error) {
	h.CreatedAt = time.Now().UTC()

	id, err := s.repo.Create(ctx, h)
	if err != nil {
		s.log.Error().Err(err).Str("owner", h.OwnerEmail).Msg("failed to create house")
		return "", err
	}

	metrics.HousesCreatedTotal.Inc()
	s.activities.Record(ports.ActivityInput{
		Collection: housesCollection,
		Subject:    id,
		Action:     domain.ActionCreated,
		Actor:      h.OwnerEmail,
		Timestamp:  h.CreatedAt,
	})
	s.log.Info().Str("house_id", id).Str("owner", h.OwnerEmail).Msg("house created")
	return id, nil
}

// Search runs the public listing search: one 10-item page plus the total
// match count.
func (s *HouseService) Search(ctx context.Context, params ports.HouseSearch) ([]domain.House, int64, error) {
	houses, total, err := s.repo.Search(ctx, params)
	if err != nil {
		s.log.Error().Err(err).Msg("house search failed")
		return nil, 0, err
	}

	filtered := "no"
	if hasSearchFilter(params) {
		filtered = "yes"
	}
	metrics.HouseSearchesTotal.WithLabelValues(filtered).Inc()
	return houses, total, nil
}

// ListByOwner returns every listing owned by email.
func (s *HouseService) ListByOwner(ctx context.Context, email string) ([]domain.House, int64, error) {
	return s.repo.FindByOwner(ctx, email)
}

// Update applies a partial field update to a listing.
func (s *HouseService) Update(ctx context.Context, id string, fields map[string]any, actor string) (*ports.UpdateAck, error) {
	// The identifier is immutable; never let a payload overwrite it.
	delete(fields, "_id")

	// An empty $set is rejected by the store; treat it as a no-op.
	if len(fields) == 0 {
		return &ports.UpdateAck{}, nil
	}

	ack, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.log.Error().Err(err).Str("house_id", id).Msg("failed to update house")
		return nil, err
	}

	if ack.MatchedCount > 0 {
		s.activities.Record(ports.ActivityInput{
			Collection: housesCollection,
			Subject:    id,
			Action:     domain.ActionUpdated,
			Actor:      actor,
			Timestamp:  time.Now().UTC(),
		})
	}
	s.log.Info().Str("house_id", id).Int64("modified", ack.ModifiedCount).Msg("house updated")
	return ack, nil
}

// Delete removes a listing.
func (s *HouseService) Delete(ctx context.Context, id, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activities.Record(ports.ActivityInput{
		Collection: housesCollection,
		Subject:    id,
		Action:     domain.ActionDeleted,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
	s.log.Info().Str("house_id", id).Msg("house deleted")
	return nil
}

func hasSearchFilter(p ports.HouseSearch) bool {
	return p.City != "" || p.Bedrooms != "" || p.Bathrooms != "" || p.RoomSize != "" ||
		p.AvailabilityDate != "" || p.RentPerMonth != "" || p.HouseName != ""
}
