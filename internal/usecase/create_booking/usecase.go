package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
)

// UseCase use case создания бронирования
type UseCase struct {
	campRepo         CampRepository
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	campRepo CampRepository,
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		campRepo:         campRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute создает бронирование в статусе CONFIRMED вместе с участниками группы
//
// Вместимость палатки НЕ проверяется: переполнение — легитимное операционное
// решение (докладываются раскладушки), подтвержденное вызывающим до вызова.
// Бронирование, участники и уведомление пишутся в одной сериализуемой
// транзакции: при любой ошибке не остается частичного состояния
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tent=%d, members=%d, created_by=%d",
		req.TentID, len(req.Members), req.CreatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование палатки и получаем её вместимость
	tent, err := uc.campRepo.GetTentByID(ctx, req.TentID)
	if err != nil {
		if errors.Is(err, campRepo.ErrTentNotFound) {
			uc.logger.Warn("CreateBooking: tent id=%d not found", req.TentID)
			return nil, ErrTentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tent id=%d: %v", req.TentID, err)
		return nil, fmt.Errorf("%w: failed to get tent: %v", ErrInternal, err)
	}

	// 3. Разрешаем событие палатки для адресации уведомления
	eventID, err := uc.campRepo.GetEventIDByTent(ctx, req.TentID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve event for tent id=%d: %v", req.TentID, err)
		return nil, fmt.Errorf("%w: failed to resolve event: %v", ErrInternal, err)
	}

	members := make([]domain.Member, len(req.Members))
	for i, m := range req.Members {
		members[i] = domain.Member{
			Position: i,
			Name:     m.Name,
			Age:      m.Age,
			Gender:   domain.Gender(m.Gender),
		}
	}

	var result *domain.Booking
	var report domain.CapacityReport

	// 4. Создаем бронирование с участниками атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking := &domain.Booking{
			TentID:       req.TentID,
			Mobile:       req.Mobile,
			Notes:        req.Notes,
			IsVIP:        req.IsVIP,
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			Status:       domain.StatusConfirmed,
			CreatedBy:    req.CreatedBy,
			Members:      members,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// Занятость после создания — вычисляется, не хранится
		occupancy, err := uc.bookingRepo.CountActiveMembers(txCtx, req.TentID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count occupancy for tent id=%d: %v", req.TentID, err)
			return fmt.Errorf("%w: failed to count occupancy: %v", ErrInternal, err)
		}
		report = domain.NewCapacityReport(req.TentID, tent.Capacity, occupancy, 0)

		// Уведомление о новом бронировании в событие палатки
		head := created.TeamHead()
		message := fmt.Sprintf("New booking #%d: %s, group of %d in tent %s",
			created.ID, head.Name, len(created.Members), tent.Name)
		if report.IsOverCapacity() {
			message = fmt.Sprintf("%s (tent over capacity: %d/%d)", message, report.CurrentOccupancy, report.Capacity)
		}

		notification := &domain.Notification{
			EventID: &eventID,
			Message: message,
			Type:    domain.NotificationInfo,
		}
		if _, err := uc.notificationRepo.Create(txCtx, notification); err != nil {
			uc.logger.Error("CreateBooking: failed to create notification: %v", err)
			return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if report.IsOverCapacity() {
		uc.logger.Warn("CreateBooking: booking id=%d created with tent id=%d over capacity (%d/%d)",
			result.ID, req.TentID, report.CurrentOccupancy, report.Capacity)
	} else {
		uc.logger.Info("CreateBooking: successfully created booking id=%d (%d/%d occupied)",
			result.ID, report.CurrentOccupancy, report.Capacity)
	}

	outMembers := make([]MemberOutput, len(result.Members))
	for i, m := range result.Members {
		outMembers[i] = MemberOutput{
			ID:       m.ID,
			Position: m.Position,
			Name:     m.Name,
			Age:      m.Age,
			Gender:   string(m.Gender),
		}
	}

	return &Response{
		ID:           result.ID,
		TentID:       result.TentID,
		Mobile:       result.Mobile,
		Notes:        result.Notes,
		IsVIP:        result.IsVIP,
		CheckInDate:  result.CheckInDate,
		CheckOutDate: result.CheckOutDate,
		Status:       string(result.Status),
		CreatedBy:    result.CreatedBy,
		Members:      outMembers,
		Occupancy:    report.CurrentOccupancy,
		Capacity:     tent.Capacity,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
