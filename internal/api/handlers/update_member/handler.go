package update_member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/bookings"
)

const (
	msgInvalidMemberID    = "некорректный ID участника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "участник не найден"
	msgInvalidInput       = "некорректные данные участника"
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

// Handle PATCH /api/v1/members/{memberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID, err := strconv.ParseInt(vars["memberId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /members/{id} - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	var req UpdateMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /members/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(memberID)
	if err != nil {
		h.logger.Warn("PATCH /members/{id} - Invalid date: member_id=%d, error=%v", memberID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	err = h.service.UpdateMember(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrMemberNotFound):
			h.logger.Warn("PATCH /members/{id} - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /members/{id} - Invalid input: member_id=%d, error=%v", memberID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /members/{id} - Failed to update member: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /members/{id} - Member updated successfully: member_id=%d", memberID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
