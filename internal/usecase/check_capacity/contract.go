package check_capacity

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// CampRepository интерфейс репозитория палаток
type CampRepository interface {
	GetTentByID(ctx context.Context, id int64) (*domain.Tent, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActiveMembers(ctx context.Context, tentID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
// Чтение вместимости и занятости идет в read-only транзакции:
// обе цифры из одного снимка данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
