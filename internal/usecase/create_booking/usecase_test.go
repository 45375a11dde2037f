package create_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
)

type fakeCampRepo struct {
	tent    *domain.Tent
	eventID int64
}

func (f *fakeCampRepo) GetTentByID(_ context.Context, id int64) (*domain.Tent, error) {
	if f.tent == nil || f.tent.ID != id {
		return nil, campRepo.ErrTentNotFound
	}
	return f.tent, nil
}

func (f *fakeCampRepo) GetEventIDByTent(_ context.Context, _ int64) (int64, error) {
	return f.eventID, nil
}

type fakeBookingRepo struct {
	created   *domain.Booking
	occupancy int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	for i := range booking.Members {
		booking.Members[i].ID = int64(100 + i)
		booking.Members[i].BookingID = booking.ID
	}
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) CountActiveMembers(_ context.Context, _ int64) (int, error) {
	return f.occupancy, nil
}

type fakeNotificationRepo struct {
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = int64(len(f.notifications) + 1)
	f.notifications = append(f.notifications, n)
	return n, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecuteCreatesBookingWithNotification(t *testing.T) {
	camp := &fakeCampRepo{tent: &domain.Tent{ID: 5, Name: "T-3", Capacity: 8}, eventID: 7}
	booking := &fakeBookingRepo{occupancy: 2}
	notifications := &fakeNotificationRepo{}

	uc := NewUseCase(camp, booking, notifications, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Len(t, resp.Members, 2)
	assert.Equal(t, 0, resp.Members[0].Position)
	assert.Equal(t, 2, resp.Occupancy)
	assert.Equal(t, 8, resp.Capacity)

	// Уведомление о создании уходит в событие палатки
	require.Len(t, notifications.notifications, 1)
	n := notifications.notifications[0]
	require.NotNil(t, n.EventID)
	assert.Equal(t, int64(7), *n.EventID)
	assert.Equal(t, domain.NotificationInfo, n.Type)
	assert.Contains(t, n.Message, "Ivan")
	assert.NotContains(t, n.Message, "over capacity")
}

func TestExecuteOverCapacityAllowed(t *testing.T) {
	camp := &fakeCampRepo{tent: &domain.Tent{ID: 5, Name: "T-3", Capacity: 3}, eventID: 7}
	booking := &fakeBookingRepo{occupancy: 5}
	notifications := &fakeNotificationRepo{}

	uc := NewUseCase(camp, booking, notifications, fakeTxManager{}, noopLogger{})

	// Вместимость не блокирует создание, переполнение только отмечается
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Occupancy)

	require.Len(t, notifications.notifications, 1)
	assert.Contains(t, notifications.notifications[0].Message, "over capacity")
}

func TestExecuteTentNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCampRepo{}, &fakeBookingRepo{}, &fakeNotificationRepo{}, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTentNotFound)
}

func TestExecuteValidationRejectsBeforeAnyWrite(t *testing.T) {
	booking := &fakeBookingRepo{}
	uc := NewUseCase(
		&fakeCampRepo{tent: &domain.Tent{ID: 5, Capacity: 8}, eventID: 7},
		booking,
		&fakeNotificationRepo{},
		fakeTxManager{},
		noopLogger{},
	)

	req := validRequest()
	req.Mobile = "123"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidMobile)
	assert.Nil(t, booking.created)
}
