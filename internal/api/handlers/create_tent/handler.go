package create_tent

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
	msgSectorNotFound     = "сектор не найден"
	msgDuplicateName      = "палатка с таким именем уже есть в секторе"
	msgInvalidInput       = "некорректные данные палатки"
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

// Handle POST /api/v1/sectors/{sectorId}/tents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sectorID, err := strconv.ParseInt(vars["sectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sectors/{id}/tents - Invalid sector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectorID)
		return
	}

	var req models.CreateTentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sectors/{id}/tents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.SectorID = sectorID

	tent, err := h.service.CreateTent(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrSectorNotFound):
			h.logger.Warn("POST /sectors/{id}/tents - Sector not found: sector_id=%d", sectorID)
			handlers.RespondNotFound(w, msgSectorNotFound)

		case errors.Is(err, camps.ErrDuplicateTentName):
			h.logger.Warn("POST /sectors/{id}/tents - Duplicate tent name: sector_id=%d, name=%q", sectorID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, camps.ErrInvalidInput):
			h.logger.Warn("POST /sectors/{id}/tents - Invalid input: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sectors/{id}/tents - Failed to create tent: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sectors/{id}/tents - Tent created successfully: tent_id=%d, sector_id=%d", tent.ID, sectorID)
	handlers.RespondJSON(w, http.StatusCreated, tent)
}
