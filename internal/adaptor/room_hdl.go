package adaptor

import (
	"net/http"

	"uncle-nomad/internal/usecase"
	"uncle-nomad/pkg/utils"

	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/rooms
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// Availability handles GET /api/rooms/availability?checkIn=<date>&checkOut=<date>
func (h *RoomHandler) Availability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	checkIn := query.Get("checkIn")
	checkOut := query.Get("checkOut")

	if checkIn == "" || checkOut == "" {
		utils.ResponseBadRequest(w, "checkIn and checkOut query parameters are required", nil)
		return
	}

	rooms, err := h.service.AvailableRooms(r.Context(), checkIn, checkOut)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}
