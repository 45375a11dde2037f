package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CampService/internal/domain"
	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
	"github.com/m04kA/SMC-CampService/pkg/ptr"
)

// Service сервис адресации и чтения уведомлений
// Уведомления — опрашиваемое состояние, не шина сообщений: запись кладет строку,
// чтение фильтрует по scope события и роли зрителя
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Broadcast создает уведомление от имени администратора
//
// Правила адресации:
//   - рассылать могут только EVENT_ADMIN и SUPER_ADMIN;
//   - EVENT_ADMIN всегда пишет в свое событие и не может объявить системную рассылку;
//   - SUPER_ADMIN с isSystemWide=true пишет системно (eventId = NULL), иначе —
//     в явно указанное событие или свое текущее;
//   - targetRole по умолчанию ALL.
func (s *Service) Broadcast(ctx context.Context, req *models.BroadcastRequest) (*models.NotificationResponse, error) {
	if err := validateBroadcast(req); err != nil {
		s.logger.Warn("Broadcast: validation failed: %v", err)
		return nil, err
	}

	eventID, err := resolveEventScope(req)
	if err != nil {
		s.logger.Warn("Broadcast: scope resolution failed for role=%s: %v", req.RequestingRole, err)
		return nil, err
	}

	targetRole := resolveTargetRole(req.TargetRole)

	notification := &domain.Notification{
		EventID:    eventID,
		TargetRole: &targetRole,
		Message:    req.Message,
		Type:       domain.NotificationType(req.Type),
	}

	created, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		s.logger.Error("Broadcast: failed to create notification: %v", err)
		return nil, fmt.Errorf("%w: Broadcast - repository error: %v", ErrInternal, err)
	}

	if eventID == nil {
		s.logger.Info("Broadcast: system-wide notification id=%d role=%s created", created.ID, targetRole)
	} else {
		s.logger.Info("Broadcast: notification id=%d event=%d role=%s created", created.ID, *eventID, targetRole)
	}

	return models.FromDomainNotification(created), nil
}

// List возвращает уведомления, видимые зрителю, новые первыми
// Страница фиксированного размера; вместе со списком возвращается число непрочитанных
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.NotificationListResponse, error) {
	filter := domain.NotificationsFilter{
		Role:    req.Role,
		EventID: req.EventID,
	}

	notifications, err := s.notificationRepo.ListVisible(ctx, filter, domain.NotificationsPageSize)
	if err != nil {
		s.logger.Error("List: repository error for role=%s: %v", req.Role, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to count unread for role=%s: %v", req.Role, err)
		return nil, fmt.Errorf("%w: List - count unread: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications, unread), nil
}

// UnreadCount возвращает число непрочитанных уведомлений зрителя
func (s *Service) UnreadCount(ctx context.Context, req *models.ListRequest) (int, error) {
	filter := domain.NotificationsFilter{
		Role:    req.Role,
		EventID: req.EventID,
	}

	unread, err := s.notificationRepo.CountUnread(ctx, filter)
	if err != nil {
		s.logger.Error("UnreadCount: repository error for role=%s: %v", req.Role, err)
		return 0, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}

	return unread, nil
}

// MarkRead помечает уведомления из явного набора id прочитанными
// Отметка никогда не происходит неявно по зрителю или времени
func (s *Service) MarkRead(ctx context.Context, req *models.MarkReadRequest) (*models.MarkReadResponse, error) {
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids must not be empty", ErrInvalidInput)
	}

	updated, err := s.notificationRepo.MarkRead(ctx, req.IDs)
	if err != nil {
		s.logger.Error("MarkRead: repository error: %v", err)
		return nil, fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: marked %d of %d notifications read", updated, len(req.IDs))
	return &models.MarkReadResponse{Updated: updated}, nil
}

func validateBroadcast(req *models.BroadcastRequest) error {
	if req.Message == "" {
		return fmt.Errorf("%w: message must not be empty", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxBroadcastMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}
	if !domain.IsValidNotificationType(domain.NotificationType(req.Type)) {
		return fmt.Errorf("%w: type must be INFO, WARNING or ALERT", ErrInvalidInput)
	}
	if req.TargetRole != nil {
		role := domain.Role(*req.TargetRole)
		if role != domain.TargetRoleAll && !domain.IsValidRole(role) {
			return fmt.Errorf("%w: unknown target role %q", ErrInvalidInput, *req.TargetRole)
		}
	}
	return nil
}

// resolveEventScope решает, против какого события будет записана рассылка
func resolveEventScope(req *models.BroadcastRequest) (*int64, error) {
	switch req.RequestingRole {
	case domain.RoleEventAdmin:
		// Админ события всегда говорит в пределах своего события
		if req.IsSystemWide {
			return nil, fmt.Errorf("%w: event admin cannot broadcast system-wide", ErrForbidden)
		}
		if req.RequestingEventID == nil {
			return nil, fmt.Errorf("%w: event admin has no event context", ErrInvalidInput)
		}
		return req.RequestingEventID, nil

	case domain.RoleSuperAdmin:
		if req.IsSystemWide {
			return nil, nil // eventId = NULL: видно во всех событиях
		}
		if req.TargetEventID != nil {
			return req.TargetEventID, nil
		}
		// Системная рассылка только по явному isSystemWide: без адресата
		// и без своего события запрос отклоняется, а не молча уходит всем
		if req.RequestingEventID == nil {
			return nil, fmt.Errorf("%w: no target event and no event context", ErrInvalidInput)
		}
		return req.RequestingEventID, nil

	default:
		return nil, fmt.Errorf("%w: role %s cannot broadcast", ErrForbidden, req.RequestingRole)
	}
}

func resolveTargetRole(raw *string) domain.Role {
	if role := domain.Role(ptr.Deref(raw)); role != "" {
		return role
	}
	return domain.TargetRoleAll
}
