package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (string, error) {
	r.nextID++
	id := "b" + strconv.Itoa(r.nextID)
	clone := *b
	clone.ID = id
	r.bookings[id] = &clone
	return id, nil
}

func (r *stubBookingRepo) FindByRenter(_ context.Context, email string) ([]domain.BookedHouse, int64, error) {
	var out []domain.BookedHouse
	for _, b := range r.bookings {
		if b.RenterEmail == email {
			out = append(out, domain.BookedHouse{Booking: *b})
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func TestBookingService_Create(t *testing.T) {
	repo := newStubBookingRepo()
	rec := &captureRecorder{}
	svc := NewBookingService(repo, rec, zerolog.Nop())

	id, err := svc.Create(context.Background(), &domain.Booking{RenterEmail: "r@x.com", HouseID: "h1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.bookings[id].CreatedAt.IsZero() {
		t.Fatalf("created timestamp not set")
	}
	if len(rec.recorded) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(rec.recorded))
	}
	act := rec.recorded[0]
	if act.Collection != "bookedHouses" || act.Action != domain.ActionCreated || act.Actor != "r@x.com" {
		t.Fatalf("unexpected activity: %+v", act)
	}
}

func TestBookingService_ListByRenter(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, &captureRecorder{}, zerolog.Nop())

	_, _ = svc.Create(context.Background(), &domain.Booking{RenterEmail: "r@x.com", HouseID: "h1"})
	_, _ = svc.Create(context.Background(), &domain.Booking{RenterEmail: "other@x.com", HouseID: "h2"})

	items, total, err := svc.ListByRenter(context.Background(), "r@x.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected exactly the renter's booking, got %d/%d", len(items), total)
	}
	if items[0].RenterEmail != "r@x.com" {
		t.Fatalf("unexpected booking: %+v", items[0])
	}
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), &captureRecorder{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing", "r@x.com"); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
