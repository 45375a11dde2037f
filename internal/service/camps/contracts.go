package camps

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// CampRepository интерфейс репозитория секторов и палаток
type CampRepository interface {
	CreateSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error)
	GetSectorByID(ctx context.Context, id int64) (*domain.Sector, error)
	RenameSector(ctx context.Context, id int64, name string) error
	DeleteSector(ctx context.Context, id int64) error
	CountTentsBySector(ctx context.Context, sectorID int64) (int, error)

	CreateTent(ctx context.Context, tent *domain.Tent) (*domain.Tent, error)
	GetTentByID(ctx context.Context, id int64) (*domain.Tent, error)
	GetTentsBySector(ctx context.Context, sectorID int64) ([]*domain.Tent, error)
	UpdateTent(ctx context.Context, id int64, name string, capacity int) error
	DeleteTent(ctx context.Context, id int64) error
	DeleteTentsBySector(ctx context.Context, sectorID int64) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для вычисления занятости и guard'ов перед удалением
type BookingRepository interface {
	CountActiveMembers(ctx context.Context, tentID int64) (int, error)
	HasActiveByTent(ctx context.Context, tentID int64) (bool, error)
	HasActiveBySector(ctx context.Context, sectorID int64) (bool, error)
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
