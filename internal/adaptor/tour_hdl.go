package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"uncle-nomad/internal/dto/request"
	"uncle-nomad/internal/usecase"
	"uncle-nomad/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// ListTours handles GET /api/tours
func (h *TourHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.ListTours(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// GetTour handles GET /api/tours/{id}
func (h *TourHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tour ID", nil)
		return
	}

	tour, err := h.service.GetTour(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get tour")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// CreateTourBooking handles POST /api/tours/book
func (h *TourHandler) CreateTourBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RequestTourBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour booking")
		return
	}

	utils.ResponseCreated(w, "Tour booking confirmed", booking)
}
