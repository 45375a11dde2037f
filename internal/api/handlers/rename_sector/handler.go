package rename_sector

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/camps"
	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

const (
	msgInvalidSectorID    = "некорректный ID сектора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сектор не найден"
	msgInvalidInput       = "некорректное имя сектора"
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

// Handle PATCH /api/v1/sectors/{sectorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sectorID, err := strconv.ParseInt(vars["sectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sectors/{id} - Invalid sector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectorID)
		return
	}

	var req models.RenameSectorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sectors/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.SectorID = sectorID

	err = h.service.RenameSector(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrSectorNotFound):
			h.logger.Warn("PATCH /sectors/{id} - Sector not found: sector_id=%d", sectorID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, camps.ErrInvalidInput):
			h.logger.Warn("PATCH /sectors/{id} - Invalid input: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /sectors/{id} - Failed to rename sector: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sectors/{id} - Sector renamed successfully: sector_id=%d", sectorID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
