package usecase

import (
	"context"
	"fmt"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/internal/data/repository"
	"uncle-nomad/internal/dto/response"

	"go.uber.org/zap"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]response.RoomResponse, error)
	// AvailableRooms filters the catalog to rooms with no booking
	// overlapping the given range. Read-only: repeated calls with no
	// intervening bookings return the same set.
	AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return response.RoomsToResponse(rooms), nil
}

func (s *roomService) AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]response.RoomResponse, error) {
	dateRange, err := entity.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	available := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := s.repo.Booking.FindByRoomID(ctx, room.ID)
		if err != nil {
			s.log.Error("Failed to load bookings for room", zap.Error(err), zap.Int64("room_id", room.ID))
			return nil, fmt.Errorf("load bookings for room %d: %w", room.ID, err)
		}

		free := true
		for _, b := range bookings {
			if b.Range().Overlaps(dateRange) {
				free = false
				break
			}
		}

		if free {
			available = append(available, response.RoomToResponse(room))
		}
	}

	s.log.Debug("Availability computed",
		zap.String("check_in", checkIn),
		zap.String("check_out", checkOut),
		zap.Int("available", len(available)),
		zap.Int("total", len(rooms)),
	)

	return available, nil
}
