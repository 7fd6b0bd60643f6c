package wire

import (
	"uncle-nomad/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	// GET /api/rooms - room catalog
	r.Get("/api/rooms", roomHandler.ListRooms)

	// GET /api/rooms/availability - rooms free for a date range
	r.Get("/api/rooms/availability", roomHandler.Availability)
}
