package usecase

import (
	"context"
	"errors"
	"testing"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/internal/dto/request"
)

func testTours() []*entity.Tour {
	return []*entity.Tour{
		{ID: 1, Name: "Sunrise Trek", Price: 1500, Capacity: 6, DurationDays: 1},
		{ID: 2, Name: "Valley Safari", Price: 3500, Capacity: 8, DurationDays: 2},
	}
}

func validTourRequest() *request.CreateTourBookingRequest {
	return &request.CreateTourBookingRequest{
		TourID:         1,
		TourDate:       "2024-06-10",
		GuestName:      "Rohit Nair",
		Email:          "rohit@example.com",
		Phone:          "+91-9000000000",
		NumberOfGuests: 4,
	}
}

func TestRequestTourBooking_Confirmed(t *testing.T) {
	repo, _ := newTestRepo(nil, testTours())
	svc := NewTourService(repo, testLogger())

	booking, err := svc.RequestTourBooking(context.Background(), validTourRequest())
	if err != nil {
		t.Fatalf("RequestTourBooking: %v", err)
	}

	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", booking.Status)
	}
	// price per guest: 1500 * 4
	if booking.TotalPrice != 6000 {
		t.Errorf("totalPrice = %v, want 6000", booking.TotalPrice)
	}
}

func TestRequestTourBooking_CapacityAcrossBookings(t *testing.T) {
	repo, _ := newTestRepo(nil, testTours())
	svc := NewTourService(repo, testLogger())
	ctx := context.Background()

	if _, err := svc.RequestTourBooking(ctx, validTourRequest()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// 4 of 6 seats taken; 3 more must be rejected.
	second := validTourRequest()
	second.NumberOfGuests = 3

	_, err := svc.RequestTourBooking(ctx, second)

	var capErr *entity.CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.Capacity != 6 {
		t.Errorf("capacity = %d, want 6", capErr.Capacity)
	}

	// 2 more still fit.
	third := validTourRequest()
	third.NumberOfGuests = 2
	if _, err := svc.RequestTourBooking(ctx, third); err != nil {
		t.Fatalf("third booking: %v", err)
	}
}

func TestRequestTourBooking_OtherDateUnaffected(t *testing.T) {
	repo, _ := newTestRepo(nil, testTours())
	svc := NewTourService(repo, testLogger())
	ctx := context.Background()

	first := validTourRequest()
	first.NumberOfGuests = 6
	if _, err := svc.RequestTourBooking(ctx, first); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	second := validTourRequest()
	second.TourDate = "2024-06-11"
	second.NumberOfGuests = 6
	if _, err := svc.RequestTourBooking(ctx, second); err != nil {
		t.Fatalf("booking on other date: %v", err)
	}
}

func TestRequestTourBooking_TourNotFound(t *testing.T) {
	repo, _ := newTestRepo(nil, testTours())
	svc := NewTourService(repo, testLogger())

	req := validTourRequest()
	req.TourID = 42

	_, err := svc.RequestTourBooking(context.Background(), req)
	if !errors.Is(err, entity.ErrTourNotFound) {
		t.Errorf("expected ErrTourNotFound, got %v", err)
	}
}

func TestRequestTourBooking_MalformedDate(t *testing.T) {
	repo, _ := newTestRepo(nil, testTours())
	svc := NewTourService(repo, testLogger())

	req := validTourRequest()
	req.TourDate = "next tuesday"

	_, err := svc.RequestTourBooking(context.Background(), req)
	if !errors.Is(err, entity.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGetTour(t *testing.T) {
	repo, _ := newTestRepo(nil, testTours())
	svc := NewTourService(repo, testLogger())
	ctx := context.Background()

	tour, err := svc.GetTour(ctx, 2)
	if err != nil {
		t.Fatalf("GetTour: %v", err)
	}
	if tour.Name != "Valley Safari" {
		t.Errorf("name = %s, want Valley Safari", tour.Name)
	}

	if _, err := svc.GetTour(ctx, 42); !errors.Is(err, entity.ErrTourNotFound) {
		t.Errorf("expected ErrTourNotFound, got %v", err)
	}
}
