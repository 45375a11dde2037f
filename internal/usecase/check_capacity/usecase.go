package check_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
)

// ErrInternal возвращается при ошибках чтения из хранилища
var ErrInternal = errors.New("check_capacity: internal error")

// UseCase проверка вместимости палатки перед созданием бронирования
// Чистое чтение: ничего не меняет и не блокирует. Окно гонки между проверкой
// и последующим созданием бронирования допустимо — переполнение палатки
// разрешено как осознанное операционное решение
type UseCase struct {
	campRepo    CampRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(campRepo CampRepository, bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		campRepo:    campRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute возвращает отчет о вместимости для предполагаемой группы
// Неизвестная палатка — не ошибка: отчет с нулевой вместимостью и fits=false,
// чтобы проверка на стойке регистрации никогда не блокировала работу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var report domain.CapacityReport

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		tent, err := uc.campRepo.GetTentByID(txCtx, req.TentID)
		if err != nil {
			if errors.Is(err, campRepo.ErrTentNotFound) {
				uc.logger.Warn("CheckCapacity: tent id=%d not found, reporting zero capacity", req.TentID)
				report = domain.NewCapacityReport(req.TentID, 0, 0, req.ProposedMembers)
				return nil
			}
			uc.logger.Error("CheckCapacity: failed to get tent id=%d: %v", req.TentID, err)
			return fmt.Errorf("%w: failed to get tent: %v", ErrInternal, err)
		}

		occupancy, err := uc.bookingRepo.CountActiveMembers(txCtx, req.TentID)
		if err != nil {
			uc.logger.Error("CheckCapacity: failed to count occupancy for tent id=%d: %v", req.TentID, err)
			return fmt.Errorf("%w: failed to count occupancy: %v", ErrInternal, err)
		}

		report = domain.NewCapacityReport(req.TentID, tent.Capacity, occupancy, req.ProposedMembers)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !report.Fits {
		uc.logger.Info("CheckCapacity: tent id=%d over capacity: %d+%d > %d",
			req.TentID, report.CurrentOccupancy, req.ProposedMembers, report.Capacity)
	}

	return fromReport(report), nil
}

func fromReport(report domain.CapacityReport) *Response {
	return &Response{
		TentID:           report.TentID,
		Capacity:         report.Capacity,
		CurrentOccupancy: report.CurrentOccupancy,
		ProjectedTotal:   report.ProjectedTotal,
		Fits:             report.Fits,
	}
}
