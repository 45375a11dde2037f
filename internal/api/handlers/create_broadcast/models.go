package create_broadcast

import (
	"github.com/m04kA/SMC-CampService/internal/domain"
	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
)

// CreateBroadcastRequest HTTP request model
// targetEventId учитывается только для SUPER_ADMIN; EVENT_ADMIN всегда
// рассылает в свое событие
type CreateBroadcastRequest struct {
	Message       string  `json:"message"`
	Type          string  `json:"type"` // INFO | WARNING | ALERT
	IsSystemWide  bool    `json:"isSystemWide"`
	TargetRole    *string `json:"targetRole,omitempty"`
	TargetEventID *int64  `json:"targetEventId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBroadcastRequest) ToServiceRequest(role domain.Role, eventID *int64) *models.BroadcastRequest {
	return &models.BroadcastRequest{
		Message:           r.Message,
		Type:              r.Type,
		IsSystemWide:      r.IsSystemWide,
		TargetRole:        r.TargetRole,
		TargetEventID:     r.TargetEventID,
		RequestingRole:    role,
		RequestingEventID: eventID,
	}
}
