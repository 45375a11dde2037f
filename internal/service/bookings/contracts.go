package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTentWithFilter(ctx context.Context, filter domain.TentBookingsFilter) ([]*domain.Booking, error)
	GetMemberByID(ctx context.Context, id int64) (*domain.Member, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateCheckOutDate(ctx context.Context, id int64, date time.Time) error
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateSharedInfo(ctx context.Context, id int64, patch domain.BookingSharedPatch) error
	UpdateMemberIdentity(ctx context.Context, memberID int64, patch domain.MemberIdentityPatch) error
}

// TransactionManager интерфейс для управления транзакциями
// Переходы статуса выполняются в транзакции: чтение с блокировкой строки
// и запись нового статуса должны быть атомарны
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
