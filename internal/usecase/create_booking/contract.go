package create_booking

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// CampRepository интерфейс репозитория секторов и палаток
type CampRepository interface {
	GetTentByID(ctx context.Context, id int64) (*domain.Tent, error)
	GetEventIDByTent(ctx context.Context, tentID int64) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountActiveMembers(ctx context.Context, tentID int64) (int, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
