package wire

import (
	"uncle-nomad/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTour(r chi.Router, tourHandler *adaptor.TourHandler) {
	r.Route("/api/tours", func(r chi.Router) {
		// GET /api/tours - tour catalog
		r.Get("/", tourHandler.ListTours)

		// POST /api/tours/book - request seats on a tour
		r.Post("/book", tourHandler.CreateTourBooking)

		// GET /api/tours/{id} - single tour
		r.Get("/{id}", tourHandler.GetTour)
	})
}
