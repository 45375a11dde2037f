package bulk_create_tents

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
)

// UseCase use case массового создания палаток
type UseCase struct {
	campRepo  CampRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(campRepo CampRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		campRepo:  campRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute создает серию палаток с именами по шаблону в одной транзакции.
// Коллизия хотя бы одного имени откатывает всю серию: либо создаются все
// палатки, либо ни одной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BulkCreateTents: sector=%d, quantity=%d, pattern=%s",
		req.SectorID, req.Quantity, req.NamePattern)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BulkCreateTents: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование сектора
	if _, err := uc.campRepo.GetSectorByID(ctx, req.SectorID); err != nil {
		if errors.Is(err, campRepo.ErrSectorNotFound) {
			uc.logger.Warn("BulkCreateTents: sector id=%d not found", req.SectorID)
			return nil, ErrSectorNotFound
		}
		uc.logger.Error("BulkCreateTents: failed to get sector id=%d: %v", req.SectorID, err)
		return nil, fmt.Errorf("%w: failed to get sector: %v", ErrInternal, err)
	}

	names := generateNames(req.NamePrefix, domain.TentNamePattern(req.NamePattern), req.Quantity, req.StartFrom)

	tents := make([]*domain.Tent, len(names))
	for i, name := range names {
		tents[i] = &domain.Tent{
			SectorID: req.SectorID,
			Name:     name,
			Capacity: req.Capacity,
		}
	}

	var created []*domain.Tent

	// 3. Вставляем всю серию атомарно
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = uc.campRepo.CreateTents(txCtx, tents)
		if err != nil {
			if errors.Is(err, campRepo.ErrDuplicateTentName) {
				uc.logger.Warn("BulkCreateTents: name collision in sector id=%d, nothing created", req.SectorID)
				return ErrDuplicateTentName
			}
			uc.logger.Error("BulkCreateTents: failed to create tents: %v", err)
			return fmt.Errorf("%w: failed to create tents: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BulkCreateTents: created %d tents in sector id=%d (%s..%s)",
		len(created), req.SectorID, names[0], names[len(names)-1])

	return toResponse(created), nil
}
