package mark_read

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/service/notifications"
	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyIDs           = "список идентификаторов пуст"
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

// Handle POST /api/v1/notifications/mark-read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.MarkReadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/mark-read - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MarkRead(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /notifications/mark-read - Empty ID list")
			handlers.RespondBadRequest(w, msgEmptyIDs)

		default:
			h.logger.Error("POST /notifications/mark-read - Failed to mark read: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/mark-read - Marked %d notifications read", result.Updated)
	handlers.RespondJSON(w, http.StatusOK, result)
}
