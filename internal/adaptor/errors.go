package adaptor

import (
	"errors"
	"net/http"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps the admission error taxonomy to HTTP statuses:
// not-found errors to 404, rejected admissions to 400, anything else to
// a logged 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var missingErr *entity.MissingFieldsError
	var capacityErr *entity.CapacityExceededError

	switch {
	case errors.Is(err, entity.ErrRoomNotFound),
		errors.Is(err, entity.ErrTourNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &missingErr):
		log.Warn(operation+" failed - incomplete request", zap.Strings("fields", missingErr.Fields))
		utils.ResponseBadRequest(w, err.Error(), missingErr.Fields)

	case errors.As(err, &capacityErr):
		log.Warn(operation+" failed - capacity exceeded", zap.Int("capacity", capacityErr.Capacity))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidRange),
		errors.Is(err, entity.ErrDateConflict):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
