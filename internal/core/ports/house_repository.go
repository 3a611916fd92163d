package ports

import (
	"context"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

// HouseSearch carries the optional public search parameters. Every field is a
// raw query-string value: unset fields impose no constraint, and the
// numeric-looking ones are matched as provided rather than parsed — except
// Page (defaults to 1 when non-numeric) and RentPerMonth (inclusive integer
// upper bound).
type HouseSearch struct {
	Page             string
	City             string
	Bedrooms         string
	Bathrooms        string
	RoomSize         string
	AvailabilityDate string
	RentPerMonth     string
	HouseName        string // case-insensitive substring match
}

// UpdateAck mirrors the store's update acknowledgment.
type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// HouseRepository defines persistence for listings.
type HouseRepository interface {
	// Create inserts a listing and returns the generated identifier.
	Create(ctx context.Context, h *domain.House) (string, error)
	// Search returns one 10-item page of matching listings plus the total
	// count of matches, computed from the same filter independent of paging.
	Search(ctx context.Context, params HouseSearch) ([]domain.House, int64, error)
	// FindByOwner returns every listing whose owner field equals email.
	FindByOwner(ctx context.Context, email string) ([]domain.House, int64, error)
	// Update applies a partial $set of fields to the listing.
	Update(ctx context.Context, id string, fields map[string]any) (*UpdateAck, error)
	// Delete removes the listing, failing with domain.ErrHouseNotFound when
	// no document matches.
	Delete(ctx context.Context, id string) error
}
