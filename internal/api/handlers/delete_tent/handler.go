package delete_tent

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/camps"
)

const (
	msgInvalidTentID   = "некорректный ID палатки"
	msgNotFound        = "палатка не найдена"
	msgTentHasBookings = "в палатке есть активные бронирования"
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

// Handle DELETE /api/v1/tents/{tentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tentID, err := strconv.ParseInt(vars["tentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tents/{id} - Invalid tent ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTentID)
		return
	}

	err = h.service.DeleteTent(r.Context(), tentID)
	if err != nil {
		switch {
		case errors.Is(err, camps.ErrTentNotFound):
			h.logger.Warn("DELETE /tents/{id} - Tent not found: tent_id=%d", tentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, camps.ErrTentHasActiveBookings):
			h.logger.Warn("DELETE /tents/{id} - Tent has active bookings: tent_id=%d", tentID)
			handlers.RespondConflict(w, msgTentHasBookings)

		default:
			h.logger.Error("DELETE /tents/{id} - Failed to delete tent: tent_id=%d, error=%v", tentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tents/{id} - Tent deleted successfully: tent_id=%d", tentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
