package check_capacity

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	checkCapacity "github.com/m04kA/SMC-CampService/internal/usecase/check_capacity"
)

const (
	msgInvalidTentID  = "некорректный ID палатки"
	msgInvalidMembers = "некорректный размер группы"
)

type Handler struct {
	useCase CheckCapacityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tents/{tentId}/capacity?proposedMembers=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tentID, err := strconv.ParseInt(vars["tentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tents/{id}/capacity - Invalid tent ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTentID)
		return
	}

	proposed := 0
	if raw := r.URL.Query().Get("proposedMembers"); raw != "" {
		proposed, err = strconv.Atoi(raw)
		if err != nil || proposed < 0 {
			h.logger.Warn("GET /tents/{id}/capacity - Invalid proposedMembers: tent_id=%d, value=%q", tentID, raw)
			handlers.RespondBadRequest(w, msgInvalidMembers)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkCapacity.Request{
		TentID:          tentID,
		ProposedMembers: proposed,
	})
	if err != nil {
		h.logger.Error("GET /tents/{id}/capacity - Failed to check capacity: tent_id=%d, error=%v", tentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tents/{id}/capacity - Capacity checked: tent_id=%d, fits=%t", tentID, result.Fits)
	handlers.RespondJSON(w, http.StatusOK, result)
}
