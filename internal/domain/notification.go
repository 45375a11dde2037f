package domain

import "time"

// NotificationType severity of a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationAlert   NotificationType = "ALERT"
)

// IsValidNotificationType проверяет допустимость типа уведомления
func IsValidNotificationType(t NotificationType) bool {
	return t == NotificationInfo || t == NotificationWarning || t == NotificationAlert
}

// Role роль пользователя, приходит из шлюза в заголовке X-User-Role
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleEventAdmin Role = "EVENT_ADMIN"
	RoleDeskAdmin  Role = "DESK_ADMIN"

	// TargetRoleAll специальное значение targetRole: уведомление видно всем ролям
	TargetRoleAll Role = "ALL"
)

// IsValidRole проверяет допустимость роли
func IsValidRole(r Role) bool {
	return r == RoleSuperAdmin || r == RoleEventAdmin || r == RoleDeskAdmin
}

// Notification stored notification row, polled by viewers
// EventID == nil означает системное уведомление, видимое во всех событиях
// TargetRole == nil или "ALL" означает видимость для всех ролей
type Notification struct {
	ID         int64
	EventID    *int64
	TargetRole *Role
	Message    string
	Type       NotificationType
	IsRead     bool
	CreatedAt  time.Time
}

// VisibleTo решает, видно ли уведомление зрителю с ролью role в событии eventID
// Правило: (eventId совпадает ИЛИ уведомление системное) И (targetRole пустой/ALL/совпадает)
func (n *Notification) VisibleTo(role Role, eventID *int64) bool {
	if n.EventID != nil {
		if eventID == nil || *n.EventID != *eventID {
			return false
		}
	}
	if n.TargetRole != nil && *n.TargetRole != TargetRoleAll && *n.TargetRole != role {
		return false
	}
	return true
}

// NotificationsFilter фильтр видимости для читающего уведомления
type NotificationsFilter struct {
	Role       Role
	EventID    *int64 // контекст события зрителя; nil у SUPER_ADMIN вне события
	OnlyUnread bool
}
