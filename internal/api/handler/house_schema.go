package handler

import "github.com/house-hunter/marketplace-api/internal/core/domain"

type createHouseRequest struct {
	Name             string `json:"name"             validate:"required"`
	Address          string `json:"address"          validate:"required"`
	City             string `json:"city"             validate:"required"`
	Bedrooms         string `json:"bedrooms"`
	Bathrooms        string `json:"bathrooms"`
	RoomSize         string `json:"roomSize"`
	AvailabilityDate string `json:"availabilityDate"`
	RentPerMonth     int    `json:"rentPerMonth"     validate:"min=0"`
	Phone            string `json:"phone"`
	Picture          string `json:"picture"`
	Description      string `json:"description"`
}

// houseListResponse is one page of the public search plus the unpaged total.
type houseListResponse struct {
	Data       []domain.House `json:"data"`
	TotalHouse int64          `json:"totalHouse"`
}

// ownerHousesResponse lists every house of one owner.
type ownerHousesResponse struct {
	Houses     []domain.House `json:"houses"`
	TotalHouse int64          `json:"totalHouse"`
}
