package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

type stubHouseService struct {
	createFn      func(ctx context.Context, h *domain.House) (string, error)
	searchFn      func(ctx context.Context, params ports.HouseSearch) ([]domain.House, int64, error)
	listByOwnerFn func(ctx context.Context, email string) ([]domain.House, int64, error)
	updateFn      func(ctx context.Context, id string, fields map[string]any, actor string) (*ports.UpdateAck, error)
	deleteFn      func(ctx context.Context, id, actor string) error
}

func (s *stubHouseService) Create(ctx context.Context, h *domain.House) (string, error) {
	return s.createFn(ctx, h)
}

func (s *stubHouseService) Search(ctx context.Context, params ports.HouseSearch) ([]domain.House, int64, error) {
	return s.searchFn(ctx, params)
}

func (s *stubHouseService) ListByOwner(ctx context.Context, email string) ([]domain.House, int64, error) {
	return s.listByOwnerFn(ctx, email)
}

func (s *stubHouseService) Update(ctx context.Context, id string, fields map[string]any, actor string) (*ports.UpdateAck, error) {
	return s.updateFn(ctx, id, fields, actor)
}

func (s *stubHouseService) Delete(ctx context.Context, id, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func TestHouseHandler_Create_OwnerFromContext(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		createFn: func(ctx context.Context, h *domain.House) (string, error) {
			if h.OwnerEmail != "owner@example.com" {
				t.Fatalf("expected owner from context, got %q", h.OwnerEmail)
			}
			if h.Name != "Lake View" || h.RentPerMonth != 900 {
				t.Fatalf("unexpected house: %+v", h)
			}
			return "house-1", nil
		},
	}
	handler := NewHouseHandler(stub)

	body := strings.NewReader(`{"name":"Lake View","address":"1 Shore Rd","city":"Dhaka","bedrooms":"3","rentPerMonth":900}`)
	req := httptest.NewRequest(http.MethodPost, "/house", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "owner@example.com")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"insertedId":"house-1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHouseHandler_Create_ZeroRentAccepted(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		createFn: func(ctx context.Context, h *domain.House) (string, error) {
			if h.RentPerMonth != 0 {
				t.Fatalf("unexpected rent: %d", h.RentPerMonth)
			}
			return "house-2", nil
		},
	}
	handler := NewHouseHandler(stub)

	body := strings.NewReader(`{"name":"Free Room","address":"1 Rd","city":"Dhaka","rentPerMonth":0}`)
	req := httptest.NewRequest(http.MethodPost, "/house", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "owner@example.com")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHouseHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewHouseHandler(&stubHouseService{})

	req := httptest.NewRequest(http.MethodPost, "/house", strings.NewReader(`{"name":"No Address"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHouseHandler_Search_ForwardsQueryParams(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		searchFn: func(ctx context.Context, params ports.HouseSearch) ([]domain.House, int64, error) {
			want := ports.HouseSearch{
				Page:         "2",
				City:         "Dhaka",
				Bedrooms:     "3",
				RentPerMonth: "1000",
				HouseName:    "lake",
			}
			if params != want {
				t.Fatalf("unexpected params: %+v", params)
			}
			return []domain.House{{ID: "h1", City: "Dhaka"}}, 13, nil
		},
	}
	handler := NewHouseHandler(stub)

	q := url.Values{}
	q.Set("page", "2")
	q.Set("city", "Dhaka")
	q.Set("bedrooms", "3")
	q.Set("rentPerMonth", "1000")
	q.Set("houseName", "lake")
	req := httptest.NewRequest(http.MethodGet, "/houses?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data       []domain.House `json:"data"`
		TotalHouse int64          `json:"totalHouse"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.TotalHouse != 13 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHouseHandler_Search_EmptyResultIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		searchFn: func(ctx context.Context, params ports.HouseSearch) ([]domain.House, int64, error) {
			return nil, 0, nil
		},
	}
	handler := NewHouseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/houses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty array, got: %s", rec.Body.String())
	}
}

func TestHouseHandler_ListByOwner(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		listByOwnerFn: func(ctx context.Context, email string) ([]domain.House, int64, error) {
			if email != "owner@example.com" {
				t.Fatalf("unexpected owner: %q", email)
			}
			return []domain.House{{ID: "h1"}, {ID: "h2"}}, 2, nil
		},
	}
	handler := NewHouseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/houses/owner@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("houseOwner")
	c.SetParamValues("owner@example.com")

	if err := handler.ListByOwner(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"totalHouse":2`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHouseHandler_Update(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		updateFn: func(ctx context.Context, id string, fields map[string]any, actor string) (*ports.UpdateAck, error) {
			if id != "house-1" || actor != "owner@example.com" {
				t.Fatalf("unexpected args: %s %s", id, actor)
			}
			if fields["rentPerMonth"] != float64(950) {
				t.Fatalf("unexpected fields: %+v", fields)
			}
			return &ports.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	handler := NewHouseHandler(stub)

	body := strings.NewReader(`{"rentPerMonth":950}`)
	req := httptest.NewRequest(http.MethodPatch, "/houses/house-1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("houseId")
	c.SetParamValues("house-1")
	c.Set("email", "owner@example.com")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"matchedCount":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHouseHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		deleteFn: func(ctx context.Context, id, actor string) error {
			return domain.ErrHouseNotFound
		},
	}
	handler := NewHouseHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/houses/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("houseId")
	c.SetParamValues("missing")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "House not found.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHouseHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubHouseService{
		deleteFn: func(ctx context.Context, id, actor string) error {
			return nil
		},
	}
	handler := NewHouseHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/houses/house-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("houseId")
	c.SetParamValues("house-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"deletedCount":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
