package usecase

import (
	"uncle-nomad/internal/data/repository"
	"uncle-nomad/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Room    RoomService
	Booking BookingService
	Tour    TourService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Room:    NewRoomService(repo, log),
		Booking: NewBookingService(repo, log),
		Tour:    NewTourService(repo, log),
	}
}
