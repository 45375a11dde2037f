package scan_overdue

import (
	"net/http"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
)

type Handler struct {
	useCase ScanOverdueUseCase
	logger  Logger
}

func NewHandler(useCase ScanOverdueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/scan-overdue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /bookings/scan-overdue - Scan failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/scan-overdue - Scan completed: flagged=%d", result.Flagged)
	handlers.RespondJSON(w, http.StatusOK, result)
}
