package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-CampService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTentNotFound       = "палатка не найдена"
	msgInvalidMobile      = "контактный номер должен содержать ровно 10 цифр"
	msgNoMembers          = "группа должна содержать хотя бы одного участника"
	msgInvalidMember      = "некорректные данные участника"
	msgInvalidDates       = "дата выезда раньше даты заезда"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Автор бронирования из identity-контекста (через middleware Auth)
	createdBy, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(createdBy)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTentNotFound):
			h.logger.Warn("POST /bookings - Tent not found: tent_id=%d", req.TentID)
			handlers.RespondNotFound(w, msgTentNotFound)

		case errors.Is(err, createBooking.ErrInvalidMobile):
			h.logger.Warn("POST /bookings - Invalid mobile: tent_id=%d", req.TentID)
			handlers.RespondBadRequest(w, msgInvalidMobile)

		case errors.Is(err, createBooking.ErrNoMembers):
			h.logger.Warn("POST /bookings - Empty member list: tent_id=%d", req.TentID)
			handlers.RespondBadRequest(w, msgNoMembers)

		case errors.Is(err, createBooking.ErrInvalidMember):
			h.logger.Warn("POST /bookings - Invalid member: tent_id=%d, error=%v", req.TentID, err)
			handlers.RespondBadRequest(w, msgInvalidMember)

		case errors.Is(err, createBooking.ErrInvalidDates):
			h.logger.Warn("POST /bookings - Check-out before check-in: tent_id=%d", req.TentID)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tent_id=%d, error=%v", req.TentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tent_id=%d, error=%v", req.TentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, tent_id=%d, members=%d",
		result.ID, result.TentID, len(result.Members))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
