package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("Booking not found.")

// Booking reserves a listing for a houseRenter. HouseID references the houses
// collection by value; the store does not enforce it.
type Booking struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	RenterEmail string    `json:"renterEmail" bson:"renterEmail"`
	HouseID     string    `json:"houseId" bson:"houseId"`
	Name        string    `json:"name" bson:"name"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	BookingDate string    `json:"bookingDate,omitempty" bson:"bookingDate,omitempty"`
	Message     string    `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// BookedHouse is a booking joined with its listing for the renter's overview.
// House is nil when the referenced listing no longer exists.
type BookedHouse struct {
	Booking `bson:",inline"`
	House   *House `json:"house,omitempty" bson:"house,omitempty"`
}
