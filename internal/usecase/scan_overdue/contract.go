package scan_overdue

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOverdue(ctx context.Context, before time.Time) ([]*domain.OverdueStay, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ZoneTimeProvider провайдер времени в часовом поясе лагеря
// Граница календарного дня для сканера считается в этом поясе,
// а не в поясе машины, на которой запущен сервис
type ZoneTimeProvider struct {
	Loc *time.Location
}

// Now возвращает текущее время в поясе лагеря
func (p *ZoneTimeProvider) Now() time.Time {
	return time.Now().In(p.Loc)
}
