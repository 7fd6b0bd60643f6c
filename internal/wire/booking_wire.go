package wire

import (
	"uncle-nomad/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/rooms/book - request a room booking
	r.Post("/api/rooms/book", bookingHandler.CreateBooking)

	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - paginated booking ledger
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/bookings/{id} - single booking
		r.Get("/{id}", bookingHandler.GetBooking)
	})
}
