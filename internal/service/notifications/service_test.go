package notifications

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
	"github.com/m04kA/SMC-CampService/pkg/ptr"
)

type fakeNotificationRepo struct {
	created   []*domain.Notification
	visible   []*domain.Notification
	unread    int
	readIDs   []int64
	gotFilter domain.NotificationsFilter
	gotLimit  uint64
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = int64(len(f.created) + 1)
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListVisible(_ context.Context, filter domain.NotificationsFilter, limit uint64) ([]*domain.Notification, error) {
	f.gotFilter = filter
	f.gotLimit = limit
	return f.visible, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, filter domain.NotificationsFilter) (int, error) {
	f.gotFilter = filter
	return f.unread, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, ids []int64) (int64, error) {
	f.readIDs = ids
	return int64(len(ids)), nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validBroadcast(role domain.Role) *models.BroadcastRequest {
	return &models.BroadcastRequest{
		Message:           "water supply restored",
		Type:              "INFO",
		RequestingRole:    role,
		RequestingEventID: ptr.Ptr(int64(7)),
	}
}

func TestBroadcastEventAdminScopedToOwnEvent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, noopLogger{})

	req := validBroadcast(domain.RoleEventAdmin)
	// Попытка адресовать чужое событие игнорируется, scope всегда свой
	req.TargetEventID = ptr.Ptr(int64(99))

	resp, err := svc.Broadcast(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.EventID)
	assert.Equal(t, int64(7), *resp.EventID)
	require.NotNil(t, resp.TargetRole)
	assert.Equal(t, "ALL", *resp.TargetRole)
}

func TestBroadcastEventAdminSystemWideForbidden(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, noopLogger{})

	req := validBroadcast(domain.RoleEventAdmin)
	req.IsSystemWide = true

	_, err := svc.Broadcast(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBroadcastEventAdminWithoutEventContext(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, noopLogger{})

	req := validBroadcast(domain.RoleEventAdmin)
	req.RequestingEventID = nil

	_, err := svc.Broadcast(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBroadcastSuperAdminSystemWide(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, noopLogger{})

	req := validBroadcast(domain.RoleSuperAdmin)
	req.IsSystemWide = true

	resp, err := svc.Broadcast(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.EventID)
}

func TestBroadcastSuperAdminExplicitTarget(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, noopLogger{})

	req := validBroadcast(domain.RoleSuperAdmin)
	req.TargetEventID = ptr.Ptr(int64(42))
	req.TargetRole = ptr.Ptr("DESK_ADMIN")
	req.Type = "ALERT"

	resp, err := svc.Broadcast(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.EventID)
	assert.Equal(t, int64(42), *resp.EventID)
	assert.Equal(t, "DESK_ADMIN", *resp.TargetRole)
	assert.Equal(t, "ALERT", resp.Type)
}

func TestBroadcastSuperAdminWithoutAnyScopeRejected(t *testing.T) {
	// Нет ни isSystemWide, ни адресата, ни своего события:
	// рассылка не должна молча стать системной
	svc := NewService(&fakeNotificationRepo{}, noopLogger{})

	req := validBroadcast(domain.RoleSuperAdmin)
	req.RequestingEventID = nil

	_, err := svc.Broadcast(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBroadcastDeskAdminForbidden(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, noopLogger{})

	_, err := svc.Broadcast(context.Background(), validBroadcast(domain.RoleDeskAdmin))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBroadcastValidation(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(r *models.BroadcastRequest)
	}{
		{"empty message", func(r *models.BroadcastRequest) { r.Message = "" }},
		{"message too long", func(r *models.BroadcastRequest) { r.Message = strings.Repeat("a", domain.MaxBroadcastMessageLength+1) }},
		{"unknown type", func(r *models.BroadcastRequest) { r.Type = "URGENT" }},
		{"unknown target role", func(r *models.BroadcastRequest) { r.TargetRole = ptr.Ptr("JANITOR") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBroadcast(domain.RoleSuperAdmin)
			tt.mutate(req)

			_, err := svc.Broadcast(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListPassesViewerScope(t *testing.T) {
	targetRole := domain.TargetRoleAll
	repo := &fakeNotificationRepo{
		visible: []*domain.Notification{
			{ID: 1, EventID: ptr.Ptr(int64(7)), TargetRole: &targetRole, Message: "hi", Type: domain.NotificationInfo},
		},
		unread: 4,
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{
		Role:    domain.RoleDeskAdmin,
		EventID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, 4, resp.UnreadCount)
	assert.Equal(t, uint64(domain.NotificationsPageSize), repo.gotLimit)
	assert.Equal(t, domain.RoleDeskAdmin, repo.gotFilter.Role)
}

func TestUnreadCount(t *testing.T) {
	repo := &fakeNotificationRepo{unread: 9}
	svc := NewService(repo, noopLogger{})

	unread, err := svc.UnreadCount(context.Background(), &models.ListRequest{Role: domain.RoleEventAdmin})
	require.NoError(t, err)
	assert.Equal(t, 9, unread)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.MarkRead(context.Background(), &models.MarkReadRequest{IDs: []int64{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Updated)
	assert.Equal(t, []int64{1, 2, 3}, repo.readIDs)
}

func TestMarkReadEmptyIDs(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, noopLogger{})

	_, err := svc.MarkRead(context.Background(), &models.MarkReadRequest{IDs: nil})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
