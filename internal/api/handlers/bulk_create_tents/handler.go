package bulk_create_tents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	bulkCreateTents "github.com/m04kA/SMC-CampService/internal/usecase/bulk_create_tents"
)

const (
	msgInvalidSectorID    = "некорректный ID сектора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSectorNotFound     = "сектор не найден"
	msgDuplicateName      = "конфликт имен: ни одна палатка не создана"
	msgInvalidInput       = "некорректные параметры массового создания"
)

type Handler struct {
	useCase BulkCreateTentsUseCase
	logger  Logger
}

func NewHandler(useCase BulkCreateTentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sectors/{sectorId}/tents/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sectorID, err := strconv.ParseInt(vars["sectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sectors/{id}/tents/bulk - Invalid sector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectorID)
		return
	}

	var req BulkCreateTentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sectors/{id}/tents/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sectorID))
	if err != nil {
		switch {
		case errors.Is(err, bulkCreateTents.ErrSectorNotFound):
			h.logger.Warn("POST /sectors/{id}/tents/bulk - Sector not found: sector_id=%d", sectorID)
			handlers.RespondNotFound(w, msgSectorNotFound)

		case errors.Is(err, bulkCreateTents.ErrDuplicateTentName):
			h.logger.Warn("POST /sectors/{id}/tents/bulk - Name collision: sector_id=%d", sectorID)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, bulkCreateTents.ErrInvalidInput):
			h.logger.Warn("POST /sectors/{id}/tents/bulk - Invalid input: sector_id=%d, error=%v", sectorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sectors/{id}/tents/bulk - Failed to create tents: sector_id=%d, error=%v",
				sectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sectors/{id}/tents/bulk - Created %d tents: sector_id=%d", result.Created, sectorID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
