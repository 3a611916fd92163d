package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

const collectionBookings = "bookedHouses"

// BookingRepository implements ports.BookingRepository on the bookedHouses
// collection.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// Create inserts a new booking document.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// FindByRenter returns the renter's bookings joined with their listings via
// $lookup, plus the total booking count from the same match.
func (r *BookingRepository) FindByRenter(ctx context.Context, email string) ([]domain.BookedHouse, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{"renterEmail": email}

	total, err := r.col.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionHouses},
			{Key: "localField", Value: "houseId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "house"},
		}}},
		// A dangling houseId leaves the house field unset rather than
		// dropping the booking.
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$house"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	bookings := make([]domain.BookedHouse, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Delete removes the booking, failing with domain.ErrBookingNotFound when no
// document matched.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
