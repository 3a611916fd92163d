package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create books a listing for the authenticated houseRenter.
//
// @Summary      Book a listing
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking fields"
// @Success      200   {object}  insertAck
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  messageResponse
// @Router       /booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	booking := domain.Booking{
		RenterEmail: contextEmail(c),
		HouseID:     req.HouseID,
		Name:        req.Name,
		Phone:       req.Phone,
		BookingDate: req.BookingDate,
		Message:     req.Message,
	}

	id, err := h.bookingService.Create(c.Request().Context(), &booking)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, insertAck{Acknowledged: true, InsertedID: id})
}

// ListByRenter returns the renter's bookings with their listings joined in.
// Like the owner listing, it trusts the path parameter.
//
// @Summary      List a renter's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        houseRenter  path  string  true  "Renter email"
// @Success      200  {object}  renterBookingsResponse
// @Failure      500  {object}  messageResponse
// @Router       /bookings/{houseRenter} [get]
func (h *BookingHandler) ListByRenter(c echo.Context) error {
	bookings, total, err := h.bookingService.ListByRenter(c.Request().Context(), c.Param("houseRenter"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	if bookings == nil {
		bookings = []domain.BookedHouse{}
	}
	return c.JSON(http.StatusOK, renterBookingsResponse{Bookings: bookings, TotalBooking: total})
}

// Delete removes one booking by id. Any houseRenter passing the role gate
// may delete any booking; ownership of the booking is not checked.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        bookId  path  string  true  "Booking id"
// @Success      200  {object}  deleteAck
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  messageResponse
// @Router       /bookings/{bookId} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	err := h.bookingService.Delete(c.Request().Context(), c.Param("bookId"), contextEmail(c))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, deleteAck{Acknowledged: true, DeletedCount: 1})
}
