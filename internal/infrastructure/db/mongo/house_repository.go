package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

const collectionHouses = "houses"

// HouseRepository implements ports.HouseRepository on the houses collection.
// Listings are keyed by a generated ObjectID hex string so bookings can
// reference them by plain string value.
type HouseRepository struct {
	col *mongo.Collection
}

func NewHouseRepository(db *mongo.Database) *HouseRepository {
	return &HouseRepository{col: db.Collection(collectionHouses)}
}

// Create inserts a new listing document.
func (r *HouseRepository) Create(ctx context.Context, h *domain.House) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	h.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, h); err != nil {
		return "", err
	}
	return h.ID, nil
}

// Search returns one page of listings matching params plus the total count.
// The count runs against the same filter without the pagination window.
func (r *HouseRepository) Search(ctx context.Context, params ports.HouseSearch) ([]domain.House, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, skip, limit := buildHouseFilter(params)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	houses := make([]domain.House, 0, limit)
	if err := cursor.All(ctx, &houses); err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

// FindByOwner returns every listing owned by email, newest first.
func (r *HouseRepository) FindByOwner(ctx context.Context, email string) ([]domain.House, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"ownerEmail": email}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	houses := make([]domain.House, 0)
	if err := cursor.All(ctx, &houses); err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

// Update applies a partial $set to the listing and reports the store's
// acknowledgment counts.
func (r *HouseRepository) Update(ctx context.Context, id string, fields map[string]any) (*ports.UpdateAck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &ports.UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes the listing, failing with domain.ErrHouseNotFound when no
// document matched.
func (r *HouseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrHouseNotFound
	}
	return nil
}

// EnsureIndexes creates the query-supporting indexes on the houses collection.
func (r *HouseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "ownerEmail", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
