package update_tent

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
	msgInvalidTentID      = "некорректный ID палатки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "палатка не найдена"
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

// Handle PATCH /api/v1/tents/{tentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tentID, err := strconv.ParseInt(vars["tentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tents/{id} - Invalid tent ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTentID)
		return
	}

	var req models.UpdateTentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tents/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TentID = tentID

	err = h.service.UpdateTent(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrTentNotFound):
			h.logger.Warn("PATCH /tents/{id} - Tent not found: tent_id=%d", tentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, camps.ErrDuplicateTentName):
			h.logger.Warn("PATCH /tents/{id} - Duplicate tent name: tent_id=%d, name=%q", tentID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, camps.ErrInvalidInput):
			h.logger.Warn("PATCH /tents/{id} - Invalid input: tent_id=%d, error=%v", tentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /tents/{id} - Failed to update tent: tent_id=%d, error=%v", tentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tents/{id} - Tent updated successfully: tent_id=%d", tentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
