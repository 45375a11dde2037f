package list_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/api/middleware"
	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
)

const msgMissingRole = "отсутствует роль пользователя"

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

// Handle GET /api/v1/notifications
// Видимость определяется ролью и событием зрителя из identity-контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user role")
		handlers.RespondUnauthorized(w, msgMissingRole)
		return
	}

	req := &models.ListRequest{
		Role:    role,
		EventID: middleware.GetEventID(r.Context()),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: role=%s, error=%v", role, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Retrieved %d notifications (%d unread): role=%s",
		len(result.Notifications), result.UnreadCount, role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
