package camps

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

// Service сервис управления секторами и палатками
type Service struct {
	campRepo    CampRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	campRepo CampRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		campRepo:    campRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateSector создает сектор
func (s *Service) CreateSector(ctx context.Context, req *models.CreateSectorRequest) (*models.SectorResponse, error) {
	if req.EventID <= 0 {
		return nil, fmt.Errorf("%w: eventId must be positive", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	sector, err := s.campRepo.CreateSector(ctx, &domain.Sector{EventID: req.EventID, Name: req.Name})
	if err != nil {
		s.logger.Error("CreateSector: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSector - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSector: created sector id=%d event=%d", sector.ID, sector.EventID)
	return models.FromDomainSector(sector), nil
}

// RenameSector переименовывает сектор
func (s *Service) RenameSector(ctx context.Context, req *models.RenameSectorRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	if err := s.campRepo.RenameSector(ctx, req.SectorID, req.Name); err != nil {
		if errors.Is(err, campRepo.ErrSectorNotFound) {
			return ErrSectorNotFound
		}
		s.logger.Error("RenameSector: repository error for sector id=%d: %v", req.SectorID, err)
		return fmt.Errorf("%w: RenameSector - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RenameSector: sector id=%d renamed", req.SectorID)
	return nil
}

// DeleteSector удаляет сектор
// Удаление безопасно только когда в секторе не осталось палаток
func (s *Service) DeleteSector(ctx context.Context, sectorID int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.campRepo.CountTentsBySector(txCtx, sectorID)
		if err != nil {
			s.logger.Error("DeleteSector: failed to count tents for sector id=%d: %v", sectorID, err)
			return fmt.Errorf("%w: DeleteSector - count tents: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("DeleteSector: sector id=%d still has %d tents", sectorID, count)
			return fmt.Errorf("%w: %d tents remain", ErrSectorHasTents, count)
		}

		if err := s.campRepo.DeleteSector(txCtx, sectorID); err != nil {
			if errors.Is(err, campRepo.ErrSectorNotFound) {
				return ErrSectorNotFound
			}
			s.logger.Error("DeleteSector: repository error for sector id=%d: %v", sectorID, err)
			return fmt.Errorf("%w: DeleteSector - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteSector: sector id=%d deleted", sectorID)
	return nil
}

// CreateTent создает одну палатку
func (s *Service) CreateTent(ctx context.Context, req *models.CreateTentRequest) (*models.TentResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTentCapacity {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if _, err := s.campRepo.GetSectorByID(ctx, req.SectorID); err != nil {
		if errors.Is(err, campRepo.ErrSectorNotFound) {
			return nil, ErrSectorNotFound
		}
		s.logger.Error("CreateTent: failed to get sector id=%d: %v", req.SectorID, err)
		return nil, fmt.Errorf("%w: CreateTent - get sector: %v", ErrInternal, err)
	}

	tent, err := s.campRepo.CreateTent(ctx, &domain.Tent{
		SectorID: req.SectorID,
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		if errors.Is(err, campRepo.ErrDuplicateTentName) {
			s.logger.Warn("CreateTent: duplicate name %q in sector id=%d", req.Name, req.SectorID)
			return nil, ErrDuplicateTentName
		}
		s.logger.Error("CreateTent: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTent: created tent id=%d %q in sector id=%d", tent.ID, tent.Name, tent.SectorID)
	return models.FromDomainTent(tent, 0), nil
}

// UpdateTent обновляет имя и вместимость палатки
func (s *Service) UpdateTent(ctx context.Context, req *models.UpdateTentRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTentCapacity {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if err := s.campRepo.UpdateTent(ctx, req.TentID, req.Name, req.Capacity); err != nil {
		switch {
		case errors.Is(err, campRepo.ErrTentNotFound):
			return ErrTentNotFound
		case errors.Is(err, campRepo.ErrDuplicateTentName):
			return ErrDuplicateTentName
		default:
			s.logger.Error("UpdateTent: repository error for tent id=%d: %v", req.TentID, err)
			return fmt.Errorf("%w: UpdateTent - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateTent: tent id=%d updated", req.TentID)
	return nil
}

// ListTents возвращает палатки сектора с вычисленной занятостью
// Сортировка по имени — порядок отображения на стойке регистрации
func (s *Service) ListTents(ctx context.Context, sectorID int64) (*models.TentListResponse, error) {
	if _, err := s.campRepo.GetSectorByID(ctx, sectorID); err != nil {
		if errors.Is(err, campRepo.ErrSectorNotFound) {
			return nil, ErrSectorNotFound
		}
		s.logger.Error("ListTents: failed to get sector id=%d: %v", sectorID, err)
		return nil, fmt.Errorf("%w: ListTents - get sector: %v", ErrInternal, err)
	}

	tents, err := s.campRepo.GetTentsBySector(ctx, sectorID)
	if err != nil {
		s.logger.Error("ListTents: repository error for sector id=%d: %v", sectorID, err)
		return nil, fmt.Errorf("%w: ListTents - repository error: %v", ErrInternal, err)
	}

	result := make([]models.TentResponse, 0, len(tents))
	for _, tent := range tents {
		occupancy, err := s.bookingRepo.CountActiveMembers(ctx, tent.ID)
		if err != nil {
			s.logger.Error("ListTents: failed to count occupancy for tent id=%d: %v", tent.ID, err)
			return nil, fmt.Errorf("%w: ListTents - count occupancy: %v", ErrInternal, err)
		}
		result = append(result, *models.FromDomainTent(tent, occupancy))
	}

	return &models.TentListResponse{Tents: result, Total: len(result)}, nil
}

// DeleteTent удаляет палатку
// Явный guard: палатка с бронированиями в статусах CONFIRMED/CHECKED_IN не удаляется
func (s *Service) DeleteTent(ctx context.Context, tentID int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		hasActive, err := s.bookingRepo.HasActiveByTent(txCtx, tentID)
		if err != nil {
			s.logger.Error("DeleteTent: failed to check active bookings for tent id=%d: %v", tentID, err)
			return fmt.Errorf("%w: DeleteTent - check active bookings: %v", ErrInternal, err)
		}
		if hasActive {
			s.logger.Warn("DeleteTent: tent id=%d has active bookings, delete rejected", tentID)
			return ErrTentHasActiveBookings
		}

		if err := s.campRepo.DeleteTent(txCtx, tentID); err != nil {
			if errors.Is(err, campRepo.ErrTentNotFound) {
				return ErrTentNotFound
			}
			s.logger.Error("DeleteTent: repository error for tent id=%d: %v", tentID, err)
			return fmt.Errorf("%w: DeleteTent - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteTent: tent id=%d deleted", tentID)
	return nil
}

// BulkDeleteTents удаляет все палатки сектора одной операцией
// Guard тот же, что и у одиночного удаления: наличие хотя бы одного активного
// бронирования в секторе отклоняет всю операцию целиком
func (s *Service) BulkDeleteTents(ctx context.Context, sectorID int64) (*models.BulkDeleteResponse, error) {
	var deleted int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.campRepo.GetSectorByID(txCtx, sectorID); err != nil {
			if errors.Is(err, campRepo.ErrSectorNotFound) {
				return ErrSectorNotFound
			}
			s.logger.Error("BulkDeleteTents: failed to get sector id=%d: %v", sectorID, err)
			return fmt.Errorf("%w: BulkDeleteTents - get sector: %v", ErrInternal, err)
		}

		hasActive, err := s.bookingRepo.HasActiveBySector(txCtx, sectorID)
		if err != nil {
			s.logger.Error("BulkDeleteTents: failed to check active bookings for sector id=%d: %v", sectorID, err)
			return fmt.Errorf("%w: BulkDeleteTents - check active bookings: %v", ErrInternal, err)
		}
		if hasActive {
			s.logger.Warn("BulkDeleteTents: sector id=%d has active bookings, delete rejected", sectorID)
			return ErrSectorHasActiveBookings
		}

		deleted, err = s.campRepo.DeleteTentsBySector(txCtx, sectorID)
		if err != nil {
			s.logger.Error("BulkDeleteTents: repository error for sector id=%d: %v", sectorID, err)
			return fmt.Errorf("%w: BulkDeleteTents - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("BulkDeleteTents: deleted %d tents in sector id=%d", deleted, sectorID)
	return &models.BulkDeleteResponse{Deleted: deleted}, nil
}
