package get_tent_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/bookings"
	"github.com/m04kA/SMC-CampService/internal/service/bookings/models"
)

const (
	msgInvalidTentID = "некорректный ID палатки"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tents/{tentId}/bookings?status=CONFIRMED&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tentID, err := strconv.ParseInt(vars["tentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tents/{id}/bookings - Invalid tent ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTentID)
		return
	}

	req := &models.GetTentBookingsRequest{TentID: tentID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetTentBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /tents/{id}/bookings - Invalid status filter: tent_id=%d", tentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /tents/{id}/bookings - Failed to list bookings: tent_id=%d, error=%v", tentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tents/{id}/bookings - Retrieved %d bookings: tent_id=%d", result.Total, tentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
