package handler

import "github.com/house-hunter/marketplace-api/internal/core/domain"

type createBookingRequest struct {
	HouseID     string `json:"houseId"     validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Phone       string `json:"phone"`
	BookingDate string `json:"bookingDate"`
	Message     string `json:"message"`
}

// renterBookingsResponse lists a renter's bookings joined with their houses.
type renterBookingsResponse struct {
	Bookings     []domain.BookedHouse `json:"bookings"`
	TotalBooking int64                `json:"totalBooking"`
}
