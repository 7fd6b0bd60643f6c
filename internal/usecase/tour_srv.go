package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/internal/data/repository"
	"uncle-nomad/internal/dto/request"
	"uncle-nomad/internal/dto/response"
	"uncle-nomad/pkg/utils"

	"go.uber.org/zap"
)

type TourService interface {
	ListTours(ctx context.Context) ([]response.TourResponse, error)
	GetTour(ctx context.Context, id int64) (*response.TourResponse, error)
	// RequestTourBooking admits a tour booking when the confirmed guests
	// for the (tour, date) pair plus the requested guests fit within the
	// tour's capacity.
	RequestTourBooking(ctx context.Context, req *request.CreateTourBookingRequest) (*response.TourBookingResponse, error)
}

type tourService struct {
	repo  *repository.Repository
	locks *utils.KeyedMutex
	log   *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo:  repo,
		locks: utils.NewKeyedMutex(),
		log:   log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) ListTours(ctx context.Context) ([]response.TourResponse, error) {
	tours, err := s.repo.Tour.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}

	return response.ToursToResponse(tours), nil
}

func (s *tourService) GetTour(ctx context.Context, id int64) (*response.TourResponse, error) {
	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get tour", zap.Error(err), zap.Int64("tour_id", id))
		return nil, fmt.Errorf("get tour %d: %w", id, err)
	}
	if tour == nil {
		return nil, entity.ErrTourNotFound
	}

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) RequestTourBooking(ctx context.Context, req *request.CreateTourBookingRequest) (*response.TourBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Tour booking validation failed", zap.Any("errors", errs))
		return nil, &entity.MissingFieldsError{Fields: utils.ValidationFields(errs)}
	}

	tour, err := s.repo.Tour.FindByID(ctx, req.TourID)
	if err != nil {
		s.log.Error("Failed to look up tour", zap.Error(err), zap.Int64("tour_id", req.TourID))
		return nil, fmt.Errorf("look up tour %d: %w", req.TourID, err)
	}
	if tour == nil {
		return nil, entity.ErrTourNotFound
	}

	tourDate, err := time.Parse(entity.DateFormat, req.TourDate)
	if err != nil {
		return nil, entity.ErrInvalidRange
	}
	tourDate = entity.ToDay(tourDate)

	s.locks.Lock(tour.ID)
	defer s.locks.Unlock(tour.ID)

	taken, err := s.repo.TourBooking.GuestsForDate(ctx, tour.ID, tourDate)
	if err != nil {
		return nil, fmt.Errorf("count guests for tour %d: %w", tour.ID, err)
	}

	if taken+req.NumberOfGuests > tour.Capacity {
		return nil, &entity.CapacityExceededError{Capacity: tour.Capacity}
	}

	booking := &entity.TourBooking{
		Reference:      utils.GenerateReference(),
		TourID:         tour.ID,
		TourDate:       tourDate,
		GuestName:      req.GuestName,
		Email:          req.Email,
		Phone:          req.Phone,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     tour.Price * float64(req.NumberOfGuests),
		Status:         entity.BookingStatusConfirmed,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.TourBooking.Create(ctx, booking, tour.Capacity); err != nil {
		var capErr *entity.CapacityExceededError
		if errors.As(err, &capErr) {
			return nil, err
		}
		s.log.Error("Failed to create tour booking",
			zap.Error(err),
			zap.Int64("tour_id", tour.ID),
			zap.String("tour_date", req.TourDate),
		)
		return nil, fmt.Errorf("create tour booking: %w", err)
	}

	s.log.Info("Tour booking confirmed",
		zap.Int64("tour_booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.Int64("tour_id", tour.ID),
		zap.String("tour_date", req.TourDate),
		zap.Int("guests", req.NumberOfGuests),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.TourBookingToResponse(booking)
	return &resp, nil
}
