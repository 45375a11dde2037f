package scan_overdue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

type fakeBookingRepo struct {
	stays     []*domain.OverdueStay
	gotBefore time.Time
}

func (f *fakeBookingRepo) GetOverdue(_ context.Context, before time.Time) ([]*domain.OverdueStay, error) {
	f.gotBefore = before
	return f.stays, nil
}

type fakeNotificationRepo struct {
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	f.notifications = append(f.notifications, n)
	return n, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecuteUsesStartOfCalendarDay(t *testing.T) {
	repo := &fakeBookingRepo{}
	loc := time.FixedZone("UTC+3", 3*60*60)

	uc := NewUseCase(repo, &fakeNotificationRepo{}, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTime{time.Date(2026, 8, 29, 23, 55, 0, 0, loc)})

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// Граница — полночь текущего дня, а не минус 24 часа
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, loc), repo.gotBefore)
}

func TestExecuteFlagsEachStayWithWarning(t *testing.T) {
	repo := &fakeBookingRepo{
		stays: []*domain.OverdueStay{
			{
				BookingID:    1,
				EventID:      7,
				TentName:     "T-1",
				SectorName:   "North",
				HeadName:     "Ivan",
				MemberCount:  3,
				CheckOutDate: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
			},
			{
				BookingID:    2,
				EventID:      8,
				TentName:     "T-2",
				SectorName:   "South",
				HeadName:     "Olga",
				MemberCount:  1,
				CheckOutDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	notifications := &fakeNotificationRepo{}

	uc := NewUseCase(repo, notifications, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTime{time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Flagged)

	require.Len(t, notifications.notifications, 2)
	first := notifications.notifications[0]
	assert.Equal(t, domain.NotificationWarning, first.Type)
	require.NotNil(t, first.EventID)
	assert.Equal(t, int64(7), *first.EventID)
	assert.Contains(t, first.Message, "booking #1")
	assert.Contains(t, first.Message, "Ivan")
	assert.Contains(t, first.Message, "2026-08-27")
}

func TestExecuteNothingOverdue(t *testing.T) {
	notifications := &fakeNotificationRepo{}

	uc := NewUseCase(&fakeBookingRepo{}, notifications, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTime{time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Flagged)
	assert.Empty(t, notifications.notifications)
}
