package create_broadcast

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/api/middleware"
	"github.com/m04kA/SMC-CampService/internal/service/notifications"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingRole        = "отсутствует роль пользователя"
	msgForbidden          = "роль не имеет права на такую рассылку"
	msgInvalidInput       = "некорректные параметры рассылки"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/broadcast
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBroadcastRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/broadcast - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		h.logger.Warn("POST /notifications/broadcast - Missing user role")
		handlers.RespondUnauthorized(w, msgMissingRole)
		return
	}
	eventID := middleware.GetEventID(r.Context())

	notification, err := h.service.Broadcast(r.Context(), req.ToServiceRequest(role, eventID))
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrForbidden):
			h.logger.Warn("POST /notifications/broadcast - Forbidden: role=%s, system_wide=%t", role, req.IsSystemWide)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /notifications/broadcast - Invalid input: role=%s, error=%v", role, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /notifications/broadcast - Failed to broadcast: role=%s, error=%v", role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/broadcast - Broadcast created: notification_id=%d, role=%s",
		notification.ID, role)
	handlers.RespondJSON(w, http.StatusCreated, notification)
}
