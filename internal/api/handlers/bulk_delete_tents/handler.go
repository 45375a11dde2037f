package bulk_delete_tents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/camps"
)

const (
	msgInvalidSectorID   = "некорректный ID сектора"
	msgNotFound          = "сектор не найден"
	msgSectorHasBookings = "в секторе есть активные бронирования"
)

type Handler struct {
	service CampService
	logger  Logger
}

func NewHandler(service CampService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sectors/{sectorId}/tents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sectorID, err := strconv.ParseInt(vars["sectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sectors/{id}/tents - Invalid sector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectorID)
		return
	}

	result, err := h.service.BulkDeleteTents(r.Context(), sectorID)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrSectorNotFound):
			h.logger.Warn("DELETE /sectors/{id}/tents - Sector not found: sector_id=%d", sectorID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, camps.ErrSectorHasActiveBookings):
			h.logger.Warn("DELETE /sectors/{id}/tents - Sector has active bookings: sector_id=%d", sectorID)
			handlers.RespondConflict(w, msgSectorHasBookings)

		default:
			h.logger.Error("DELETE /sectors/{id}/tents - Failed to delete tents: sector_id=%d, error=%v",
				sectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sectors/{id}/tents - Deleted %d tents: sector_id=%d", result.Deleted, sectorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
