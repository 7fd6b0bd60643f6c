package usecase

import (
	"context"
	"fmt"
	"time"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/internal/data/repository"
	"uncle-nomad/internal/dto/request"
	"uncle-nomad/internal/dto/response"
	"uncle-nomad/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// RequestBooking runs the admission pipeline: field validation, room
	// lookup, capacity check, date range construction, availability scan,
	// price computation, ledger append. Failures come back as the typed
	// admission errors in entity.
	RequestBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo  *repository.Repository
	locks *utils.KeyedMutex
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		locks: utils.NewKeyedMutex(),
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) RequestBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Field completeness
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking request validation failed", zap.Any("errors", errs))
		return nil, &entity.MissingFieldsError{Fields: utils.ValidationFields(errs)}
	}

	// 2. Room must exist
	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		s.log.Error("Failed to look up room", zap.Error(err), zap.Int64("room_id", req.RoomID))
		return nil, fmt.Errorf("look up room %d: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, entity.ErrRoomNotFound
	}

	// 3. Guest count within capacity
	if req.NumberOfGuests > room.Capacity {
		return nil, &entity.CapacityExceededError{Capacity: room.Capacity}
	}

	// 4. Date range
	dateRange, err := entity.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// 5–7. Availability scan and append, serialized per room so two
	// concurrent requests cannot both pass the scan (check-then-act).
	s.locks.Lock(room.ID)
	defer s.locks.Unlock(room.ID)

	existing, err := s.repo.Booking.FindByRoomID(ctx, room.ID)
	if err != nil {
		s.log.Error("Failed to load bookings for room", zap.Error(err), zap.Int64("room_id", room.ID))
		return nil, fmt.Errorf("load bookings for room %d: %w", room.ID, err)
	}

	for _, b := range existing {
		if b.Range().Overlaps(dateRange) {
			return nil, entity.ErrDateConflict
		}
	}

	totalPrice := room.Price * float64(dateRange.Nights())

	booking := &entity.Booking{
		Reference:        utils.GenerateReference(),
		RoomID:           room.ID,
		CheckIn:          dateRange.CheckIn,
		CheckOut:         dateRange.CheckOut,
		GuestName:        req.GuestName,
		Email:            req.Email,
		Phone:            req.Phone,
		NumberOfGuests:   req.NumberOfGuests,
		NumberOfChildren: req.NumberOfChildren,
		SpecialRequests:  req.SpecialRequests,
		MealIncluded:     req.MealIncluded,
		TotalPrice:       totalPrice,
		Status:           entity.BookingStatusConfirmed,
		CreatedAt:        time.Now(),
	}

	// The repository re-checks the overlap inside its transaction, so a
	// conflict can still surface here under concurrent processes.
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if err == entity.ErrDateConflict {
			return nil, err
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("room_id", room.ID),
			zap.String("check_in", req.CheckIn),
			zap.String("check_out", req.CheckOut),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.Int64("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.Int64("room_id", room.ID),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.Int("nights", dateRange.Nights()),
		zap.Float64("total_price", totalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.Int64("booking_id", id))
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}
