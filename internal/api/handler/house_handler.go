package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

// HouseHandler serves the listing endpoints.
type HouseHandler struct {
	houseService ports.HouseService
}

func NewHouseHandler(houseService ports.HouseService) *HouseHandler {
	return &HouseHandler{houseService: houseService}
}

// contextEmail returns the identity the auth middleware stored on the
// request context.
func contextEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}

// Create inserts a listing owned by the authenticated houseOwner.
//
// @Summary      Create a listing
// @Tags         houses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHouseRequest  true  "Listing fields"
// @Success      200   {object}  insertAck
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  messageResponse
// @Router       /house [post]
func (h *HouseHandler) Create(c echo.Context) error {
	var req createHouseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	house := domain.House{
		Name:             req.Name,
		OwnerEmail:       contextEmail(c),
		Address:          req.Address,
		City:             req.City,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		RoomSize:         req.RoomSize,
		AvailabilityDate: req.AvailabilityDate,
		RentPerMonth:     req.RentPerMonth,
		Phone:            req.Phone,
		Picture:          req.Picture,
		Description:      req.Description,
	}

	id, err := h.houseService.Create(c.Request().Context(), &house)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, insertAck{Acknowledged: true, InsertedID: id})
}

// Search is the public paginated listing search. Filters arrive as query
// parameters and are forwarded raw; paging is fixed at 10 per page.
//
// @Summary      Search listings
// @Tags         houses
// @Produce      json
// @Param        page              query  string  false  "1-based page, 10 per page"
// @Param        city              query  string  false  "Exact city"
// @Param        bedrooms          query  string  false  "Exact stored value"
// @Param        bathrooms         query  string  false  "Exact stored value"
// @Param        roomSize          query  string  false  "Exact stored value"
// @Param        availabilityDate  query  string  false  "Exact stored value"
// @Param        rentPerMonth      query  string  false  "Inclusive upper bound"
// @Param        houseName         query  string  false  "Case-insensitive substring"
// @Success      200  {object}  houseListResponse
// @Failure      500  {object}  messageResponse
// @Router       /houses [get]
func (h *HouseHandler) Search(c echo.Context) error {
	params := ports.HouseSearch{
		Page:             c.QueryParam("page"),
		City:             c.QueryParam("city"),
		Bedrooms:         c.QueryParam("bedrooms"),
		Bathrooms:        c.QueryParam("bathrooms"),
		RoomSize:         c.QueryParam("roomSize"),
		AvailabilityDate: c.QueryParam("availabilityDate"),
		RentPerMonth:     c.QueryParam("rentPerMonth"),
		HouseName:        c.QueryParam("houseName"),
	}

	houses, total, err := h.houseService.Search(c.Request().Context(), params)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	if houses == nil {
		houses = []domain.House{}
	}
	return c.JSON(http.StatusOK, houseListResponse{Data: houses, TotalHouse: total})
}

// ListByOwner returns every listing of the owner named in the path. The
// route sits behind the auth gate but trusts the path parameter, matching
// the original contract.
//
// @Summary      List an owner's houses
// @Tags         houses
// @Produce      json
// @Security     BearerAuth
// @Param        houseOwner  path  string  true  "Owner email"
// @Success      200  {object}  ownerHousesResponse
// @Failure      500  {object}  messageResponse
// @Router       /houses/{houseOwner} [get]
func (h *HouseHandler) ListByOwner(c echo.Context) error {
	houses, total, err := h.houseService.ListByOwner(c.Request().Context(), c.Param("houseOwner"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	if houses == nil {
		houses = []domain.House{}
	}
	return c.JSON(http.StatusOK, ownerHousesResponse{Houses: houses, TotalHouse: total})
}

// Update applies a partial update to one listing. The body is an arbitrary
// field map; the service strips any _id before it reaches the store.
//
// @Summary      Update a listing
// @Tags         houses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        houseId  path  string          true  "Listing id"
// @Param        body     body  map[string]any  true  "Fields to set"
// @Success      200  {object}  ports.UpdateAck
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  messageResponse
// @Router       /houses/{houseId} [patch]
func (h *HouseHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	ack, err := h.houseService.Update(c.Request().Context(), c.Param("houseId"), fields, contextEmail(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, ack)
}

// Delete removes one listing by id.
//
// @Summary      Delete a listing
// @Tags         houses
// @Produce      json
// @Security     BearerAuth
// @Param        houseId  path  string  true  "Listing id"
// @Success      200  {object}  deleteAck
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  messageResponse
// @Router       /houses/{houseId} [delete]
func (h *HouseHandler) Delete(c echo.Context) error {
	err := h.houseService.Delete(c.Request().Context(), c.Param("houseId"), contextEmail(c))
	if err != nil {
		if errors.Is(err, domain.ErrHouseNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, deleteAck{Acknowledged: true, DeletedCount: 1})
}
