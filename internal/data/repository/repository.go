package repository

import (
	"uncle-nomad/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room        RoomRepository
	Booking     BookingRepository
	Tour        TourRepository
	TourBooking TourBookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:        NewRoomRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Tour:        NewTourRepository(db, log),
		TourBooking: NewTourBookingRepository(db, log),
	}
}
