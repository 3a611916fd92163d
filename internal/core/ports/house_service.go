package ports

import (
	"context"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

// HouseService defines the listing use cases.
type HouseService interface {
	Create(ctx context.Context, h *domain.House) (string, error)
	Search(ctx context.Context, params HouseSearch) ([]domain.House, int64, error)
	ListByOwner(ctx context.Context, email string) ([]domain.House, int64, error)
	Update(ctx context.Context, id string, fields map[string]any, actor string) (*UpdateAck, error)
	Delete(ctx context.Context, id, actor string) error
}
