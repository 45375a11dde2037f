package notifications

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListVisible(ctx context.Context, filter domain.NotificationsFilter, limit uint64) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, filter domain.NotificationsFilter) (int, error)
	MarkRead(ctx context.Context, ids []int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
