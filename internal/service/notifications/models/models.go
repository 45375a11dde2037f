package models

import (
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// Request модели

// BroadcastRequest запрос на рассылку уведомления
// RequestingRole и RequestingEventID приходят из identity-контекста запроса,
// TargetEventID — явный адресат, доступный только SUPER_ADMIN
type BroadcastRequest struct {
	Message       string
	Type          string
	IsSystemWide  bool
	TargetRole    *string
	TargetEventID *int64

	RequestingRole    domain.Role
	RequestingEventID *int64
}

// ListRequest запрос на чтение уведомлений зрителем
type ListRequest struct {
	Role    domain.Role
	EventID *int64
}

// MarkReadRequest запрос на отметку уведомлений прочитанными
type MarkReadRequest struct {
	IDs []int64 `json:"ids"`
}

// Response модели

// NotificationResponse уведомление
type NotificationResponse struct {
	ID         int64     `json:"id"`
	EventID    *int64    `json:"eventId,omitempty"`
	TargetRole *string   `json:"targetRole,omitempty"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NotificationListResponse список уведомлений с числом непрочитанных
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// MarkReadResponse результат отметки прочитанными
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// FromDomainNotification конвертирует domain уведомление в response
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	resp := &NotificationResponse{
		ID:        n.ID,
		EventID:   n.EventID,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.TargetRole != nil {
		role := string(*n.TargetRole)
		resp.TargetRole = &role
	}
	return resp
}

// FromDomainNotificationList конвертирует список domain уведомлений в response
func FromDomainNotificationList(notifications []*domain.Notification, unread int) *NotificationListResponse {
	result := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, *FromDomainNotification(n))
	}
	return &NotificationListResponse{
		Notifications: result,
		UnreadCount:   unread,
	}
}
