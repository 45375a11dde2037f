package list_tents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/camps"
)

const (
	msgInvalidSectorID = "некорректный ID сектора"
	msgNotFound        = "сектор не найден"
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

// Handle GET /api/v1/sectors/{sectorId}/tents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sectorID, err := strconv.ParseInt(vars["sectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sectors/{id}/tents - Invalid sector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectorID)
		return
	}

	result, err := h.service.ListTents(r.Context(), sectorID)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrSectorNotFound):
			h.logger.Warn("GET /sectors/{id}/tents - Sector not found: sector_id=%d", sectorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /sectors/{id}/tents - Failed to list tents: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sectors/{id}/tents - Retrieved %d tents: sector_id=%d", result.Total, sectorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
