package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CampService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
// Все переходы статуса выполняются в транзакции с блокировкой строки бронирования:
// из двух конкурентных переходов второй увидит новое состояние и получит ErrInvalidTransition
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование с участниками по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetTentBookings получает бронирования палатки с фильтрацией по статусу
func (s *Service) GetTentBookings(ctx context.Context, req *models.GetTentBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTentBookings: invalid status=%v for tent=%d", req.Status, req.TentID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTentWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTentBookings: repository error for tent=%d: %v", req.TentID, err)
		return nil, fmt.Errorf("%w: GetTentBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTentBookings: fetched %d bookings for tent=%d", len(bookings), req.TentID)
	return models.FromDomainBookingList(bookings), nil
}

// CheckIn переводит бронирование CONFIRMED → CHECKED_IN
// Повторный check-in, как и check-in после выезда или отмены, отклоняется
func (s *Service) CheckIn(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckIn: booking id=%d", bookingID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getForUpdate(txCtx, bookingID, "CheckIn")
		if err != nil {
			return err
		}

		if !booking.CanCheckIn() {
			s.logger.Warn("CheckIn: booking id=%d in status %s, transition rejected", bookingID, booking.Status)
			return fmt.Errorf("%w: cannot check in from status %s", ErrInvalidTransition, booking.Status)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCheckedIn); err != nil {
			s.logger.Error("CheckIn: failed to update status for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: CheckIn - update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCheckedIn
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckIn: booking id=%d checked in", bookingID)
	return models.FromDomainBooking(result), nil
}

// CheckOut переводит бронирование в CHECKED_OUT и освобождает места в палатке
// Разрешен из CHECKED_IN и напрямую из CONFIRMED (гость уезжает, не заселившись).
// Если дата выезда не была проставлена, ставится текущая
func (s *Service) CheckOut(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckOut: booking id=%d", bookingID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getForUpdate(txCtx, bookingID, "CheckOut")
		if err != nil {
			return err
		}

		if !booking.CanCheckOut() {
			s.logger.Warn("CheckOut: booking id=%d in status %s, transition rejected", bookingID, booking.Status)
			return fmt.Errorf("%w: cannot check out from status %s", ErrInvalidTransition, booking.Status)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCheckedOut); err != nil {
			s.logger.Error("CheckOut: failed to update status for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: CheckOut - update status: %v", ErrInternal, err)
		}
		booking.Status = domain.StatusCheckedOut

		if booking.CheckOutDate == nil {
			now := s.timeProvider.Now()
			if err := s.bookingRepo.UpdateCheckOutDate(txCtx, bookingID, now); err != nil {
				s.logger.Error("CheckOut: failed to stamp check-out date for booking id=%d: %v", bookingID, err)
				return fmt.Errorf("%w: CheckOut - stamp check-out date: %v", ErrInternal, err)
			}
			booking.CheckOutDate = &now
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckOut: booking id=%d checked out, %d spots vacated", bookingID, result.MemberCount())
	return models.FromDomainBooking(result), nil
}

// ExtendStay продлевает проживание до новой даты выезда
// Новая дата не может быть раньше даты заезда
func (s *Service) ExtendStay(ctx context.Context, req *models.ExtendStayRequest) (*models.BookingResponse, error) {
	s.logger.Info("ExtendStay: booking id=%d, new check-out=%s",
		req.BookingID, req.NewCheckOutDate.Format(domain.DateFormat))

	if req.NewCheckOutDate.IsZero() {
		return nil, fmt.Errorf("%w: newCheckOutDate is required", ErrInvalidInput)
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getForUpdate(txCtx, req.BookingID, "ExtendStay")
		if err != nil {
			return err
		}

		if booking.IsTerminal() {
			s.logger.Warn("ExtendStay: booking id=%d in terminal status %s", req.BookingID, booking.Status)
			return fmt.Errorf("%w: cannot extend booking in status %s", ErrInvalidTransition, booking.Status)
		}

		if booking.CheckInDate != nil && dateOnly(req.NewCheckOutDate).Before(dateOnly(*booking.CheckInDate)) {
			s.logger.Warn("ExtendStay: booking id=%d new check-out %s before check-in %s",
				req.BookingID, req.NewCheckOutDate.Format(domain.DateFormat), booking.CheckInDate.Format(domain.DateFormat))
			return fmt.Errorf("%w: new check-out date is before check-in date", ErrInvalidInput)
		}

		if err := s.bookingRepo.UpdateCheckOutDate(txCtx, req.BookingID, req.NewCheckOutDate); err != nil {
			s.logger.Error("ExtendStay: failed to update check-out date for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: ExtendStay - update check-out date: %v", ErrInternal, err)
		}

		booking.CheckOutDate = &req.NewCheckOutDate
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ExtendStay: booking id=%d extended", req.BookingID)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование с указанием причины
// Допустим из любого нетерминального статуса
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: booking id=%d", req.BookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getForUpdate(txCtx, req.BookingID, "Cancel")
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d in status %s, transition rejected", req.BookingID, booking.Status)
			return fmt.Errorf("%w: cannot cancel booking in status %s", ErrInvalidTransition, booking.Status)
		}

		if err := s.bookingRepo.Cancel(txCtx, req.BookingID, req.CancellationReason); err != nil {
			s.logger.Error("Cancel: failed to cancel booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: booking id=%d cancelled", req.BookingID)
	return nil
}

// UpdateMember редактирует участника группы
// Личные поля (name/age/gender) пишутся в строку участника; групповые
// (mobile/notes/даты) — в его бронирование, общие на всю группу.
// Обе записи выполняются в одной транзакции: либо применяются обе, либо ни одной
func (s *Service) UpdateMember(ctx context.Context, req *models.UpdateMemberRequest) error {
	s.logger.Info("UpdateMember: member id=%d", req.MemberID)

	if err := validateUpdateMember(req); err != nil {
		s.logger.Warn("UpdateMember: validation failed for member id=%d: %v", req.MemberID, err)
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		member, err := s.bookingRepo.GetMemberByID(txCtx, req.MemberID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrMemberNotFound) {
				s.logger.Warn("UpdateMember: member id=%d not found", req.MemberID)
				return ErrMemberNotFound
			}
			s.logger.Error("UpdateMember: failed to get member id=%d: %v", req.MemberID, err)
			return fmt.Errorf("%w: UpdateMember - get member: %v", ErrInternal, err)
		}

		if identity := req.IdentityPatch(); !identity.IsEmpty() {
			if err := s.bookingRepo.UpdateMemberIdentity(txCtx, member.ID, identity); err != nil {
				s.logger.Error("UpdateMember: failed to update member id=%d: %v", member.ID, err)
				return fmt.Errorf("%w: UpdateMember - update identity: %v", ErrInternal, err)
			}
		}

		if shared := req.SharedPatch(); !shared.IsEmpty() {
			if err := s.bookingRepo.UpdateSharedInfo(txCtx, member.BookingID, shared); err != nil {
				s.logger.Error("UpdateMember: failed to update booking id=%d: %v", member.BookingID, err)
				return fmt.Errorf("%w: UpdateMember - update shared info: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("UpdateMember: member id=%d updated", req.MemberID)
	return nil
}

// getForUpdate читает бронирование внутри транзакции (с блокировкой строки)
func (s *Service) getForUpdate(txCtx context.Context, bookingID int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: failed to get booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - get booking: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func validateUpdateMember(req *models.UpdateMemberRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Age != nil && !domain.IsValidMemberAge(*req.Age) {
		return fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}
	if req.Gender != nil && !domain.IsValidGender(domain.Gender(*req.Gender)) {
		return fmt.Errorf("%w: gender must be MALE, FEMALE or OTHER", ErrInvalidInput)
	}
	if req.Mobile != nil && !domain.IsValidMobile(*req.Mobile) {
		return fmt.Errorf("%w: mobile must be exactly %d digits", ErrInvalidInput, domain.MobileDigits)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
