package delete_sector

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
	msgSectorHasTents  = "в секторе еще остались палатки"
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

// Handle DELETE /api/v1/sectors/{sectorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sectorID, err := strconv.ParseInt(vars["sectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sectors/{id} - Invalid sector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectorID)
		return
	}

	err = h.service.DeleteSector(r.Context(), sectorID)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrSectorNotFound):
			h.logger.Warn("DELETE /sectors/{id} - Sector not found: sector_id=%d", sectorID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, camps.ErrSectorHasTents):
			h.logger.Warn("DELETE /sectors/{id} - Sector has tents: sector_id=%d", sectorID)
			handlers.RespondConflict(w, msgSectorHasTents)

		default:
			h.logger.Error("DELETE /sectors/{id} - Failed to delete sector: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sectors/{id} - Sector deleted successfully: sector_id=%d", sectorID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
