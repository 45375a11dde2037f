package bulk_create_tents

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// CampRepository интерфейс репозитория секторов и палаток
type CampRepository interface {
	GetSectorByID(ctx context.Context, id int64) (*domain.Sector, error)
	CreateTents(ctx context.Context, tents []*domain.Tent) ([]*domain.Tent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
