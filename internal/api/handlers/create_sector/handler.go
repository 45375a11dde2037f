package create_sector

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/camps"
	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сектора"
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

// Handle POST /api/v1/sectors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sectors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sector, err := h.service.CreateSector(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrInvalidInput):
			h.logger.Warn("POST /sectors - Invalid input: event_id=%d, error=%v", req.EventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sectors - Failed to create sector: event_id=%d, error=%v", req.EventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sectors - Sector created successfully: sector_id=%d, event_id=%d", sector.ID, sector.EventID)
	handlers.RespondJSON(w, http.StatusCreated, sector)
}
