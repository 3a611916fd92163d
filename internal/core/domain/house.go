package domain

import (
	"errors"
	"time"
)

var ErrHouseNotFound = errors.New("House not found.")

// House is a rental listing owned by a houseOwner, identified by the owner's
// email. Bedrooms, bathrooms and room size stay strings: search filters
// compare the raw query value against the stored one, so both sides keep the
// client's representation.
type House struct {
	ID               string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name             string    `json:"name" bson:"name"`
	OwnerEmail       string    `json:"ownerEmail" bson:"ownerEmail"`
	Address          string    `json:"address" bson:"address"`
	City             string    `json:"city" bson:"city"`
	Bedrooms         string    `json:"bedrooms" bson:"bedrooms"`
	Bathrooms        string    `json:"bathrooms" bson:"bathrooms"`
	RoomSize         string    `json:"roomSize" bson:"roomSize"`
	AvailabilityDate string    `json:"availabilityDate" bson:"availabilityDate"`
	RentPerMonth     int       `json:"rentPerMonth" bson:"rentPerMonth"`
	Phone            string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Picture          string    `json:"picture,omitempty" bson:"picture,omitempty"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}
