package scan_overdue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("scan_overdue: internal error")

// Response результат сканирования
type Response struct {
	Flagged int `json:"flagged"` // число просроченных проживаний, по уведомлению на каждое
}

// UseCase сканер просроченных проживаний
//
// Находит бронирования в статусе CHECKED_IN с плановой датой выезда раньше начала
// текущего календарного дня и пишет по WARNING-уведомлению в событие каждой находки.
// Сканер намеренно недеструктивен: он никогда не выселяет сам — принудительный
// авто-checkout терял бы гостей, которые законно остались еще на день.
// Запускается только по явному вызову, фонового планировщика нет
type UseCase struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider заменяет провайдер времени, например на часовой пояс лагеря
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute сканирует просроченные проживания и возвращает число находок
//
// Граница "сегодня" — начало локального календарного дня, не скользящие 24 часа:
// бронирование с датой выезда сегодня не считается просроченным до полуночи
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	uc.logger.Info("ScanOverdue: scanning stays with planned check-out before %s",
		startOfToday.Format(domain.DateFormat))

	var flagged int

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		stays, err := uc.bookingRepo.GetOverdue(txCtx, startOfToday)
		if err != nil {
			uc.logger.Error("ScanOverdue: failed to get overdue stays: %v", err)
			return fmt.Errorf("%w: failed to get overdue stays: %v", ErrInternal, err)
		}

		for _, stay := range stays {
			notification := &domain.Notification{
				EventID: &stay.EventID,
				Message: overdueMessage(stay),
				Type:    domain.NotificationWarning,
			}
			if _, err := uc.notificationRepo.Create(txCtx, notification); err != nil {
				uc.logger.Error("ScanOverdue: failed to create notification for booking id=%d: %v",
					stay.BookingID, err)
				return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
			}
		}

		flagged = len(stays)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScanOverdue: flagged %d overdue stays", flagged)
	return &Response{Flagged: flagged}, nil
}

func overdueMessage(stay *domain.OverdueStay) string {
	return fmt.Sprintf("Overdue stay: booking #%d (%s, group of %d) in tent %s, sector %s, planned check-out was %s",
		stay.BookingID,
		stay.HeadName,
		stay.MemberCount,
		stay.TentName,
		stay.SectorName,
		stay.CheckOutDate.Format(domain.DateFormat),
	)
}
