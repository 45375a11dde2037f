package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CampService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CampService/pkg/ptr"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	members  map[int64]*domain.Member

	sharedPatches   map[int64]domain.BookingSharedPatch
	identityPatches map[int64]domain.MemberIdentityPatch
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	f := &fakeRepo{
		bookings:        make(map[int64]*domain.Booking),
		members:         make(map[int64]*domain.Member),
		sharedPatches:   make(map[int64]domain.BookingSharedPatch),
		identityPatches: make(map[int64]domain.MemberIdentityPatch),
	}
	for _, b := range bookings {
		f.bookings[b.ID] = b
		for i := range b.Members {
			f.members[b.Members[i].ID] = &b.Members[i]
		}
	}
	return f
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByTentWithFilter(_ context.Context, filter domain.TentBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.TentID != filter.TentID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) GetMemberByID(_ context.Context, id int64) (*domain.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, bookingRepo.ErrMemberNotFound
	}
	return m, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

func (f *fakeRepo) UpdateCheckOutDate(_ context.Context, id int64, date time.Time) error {
	f.bookings[id].CheckOutDate = &date
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	b := f.bookings[id]
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	return nil
}

func (f *fakeRepo) UpdateSharedInfo(_ context.Context, id int64, patch domain.BookingSharedPatch) error {
	f.sharedPatches[id] = patch
	return nil
}

func (f *fakeRepo) UpdateMemberIdentity(_ context.Context, memberID int64, patch domain.MemberIdentityPatch) error {
	f.identityPatches[memberID] = patch
	return nil
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

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		TentID: 5,
		Mobile: "9991112233",
		Status: domain.StatusConfirmed,
		Members: []domain.Member{
			{ID: 10, BookingID: id, Position: 0, Name: "Ivan", Age: 30, Gender: domain.GenderMale},
			{ID: 11, BookingID: id, Position: 1, Name: "Olga", Age: 28, Gender: domain.GenderFemale},
		},
	}
}

func TestCheckIn(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "CHECKED_IN", resp.Status)
	assert.Equal(t, domain.StatusCheckedIn, repo.bookings[1].Status)

	// Повторный check-in отклоняется
	_, err = svc.CheckIn(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCheckInNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeTxManager{}, noopLogger{})

	_, err := svc.CheckIn(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckOutStampsDateWhenUnset(t *testing.T) {
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCheckedIn
	repo := newFakeRepo(booking)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	svc := NewService(repo, fakeTxManager{}, noopLogger{})
	svc.timeProvider = fixedTime{now}

	resp, err := svc.CheckOut(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "CHECKED_OUT", resp.Status)
	require.NotNil(t, resp.CheckOutDate)
	assert.Equal(t, now, *resp.CheckOutDate)
}

func TestCheckOutKeepsExistingDate(t *testing.T) {
	planned := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCheckedIn
	booking.CheckOutDate = &planned
	repo := newFakeRepo(booking)

	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.CheckOut(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutDate)
	assert.Equal(t, planned, *resp.CheckOutDate)
}

func TestCheckOutDirectlyFromConfirmed(t *testing.T) {
	// Гость так и не заехал, но бронирование закрывается и освобождает места
	repo := newFakeRepo(confirmedBooking(1))
	svc := NewService(repo, fakeTxManager{}, noopLogger{})
	svc.timeProvider = fixedTime{time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}

	resp, err := svc.CheckOut(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "CHECKED_OUT", resp.Status)
}

func TestCheckOutFromTerminalRejected(t *testing.T) {
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCancelled
	svc := NewService(newFakeRepo(booking), fakeTxManager{}, noopLogger{})

	_, err := svc.CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExtendStay(t *testing.T) {
	checkIn := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCheckedIn
	booking.CheckInDate = &checkIn
	repo := newFakeRepo(booking)

	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	newDate := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ExtendStay(context.Background(), &models.ExtendStayRequest{
		BookingID:       1,
		NewCheckOutDate: newDate,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutDate)
	assert.Equal(t, newDate, *resp.CheckOutDate)
}

func TestExtendStayBeforeCheckInRejected(t *testing.T) {
	checkIn := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	booking := confirmedBooking(1)
	booking.CheckInDate = &checkIn
	svc := NewService(newFakeRepo(booking), fakeTxManager{}, noopLogger{})

	_, err := svc.ExtendStay(context.Background(), &models.ExtendStayRequest{
		BookingID:       1,
		NewCheckOutDate: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExtendStayTerminalRejected(t *testing.T) {
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCheckedOut
	svc := NewService(newFakeRepo(booking), fakeTxManager{}, noopLogger{})

	_, err := svc.ExtendStay(context.Background(), &models.ExtendStayRequest{
		BookingID:       1,
		NewCheckOutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:          1,
		CancellationReason: "duplicate entry",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	require.NotNil(t, repo.bookings[1].CancellationReason)
	assert.Equal(t, "duplicate entry", *repo.bookings[1].CancellationReason)
}

func TestCancelCheckedOutRejected(t *testing.T) {
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCheckedOut
	svc := NewService(newFakeRepo(booking), fakeTxManager{}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 1})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateMemberSplitsPatches(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	err := svc.UpdateMember(context.Background(), &models.UpdateMemberRequest{
		MemberID: 11,
		Name:     ptr.Ptr("Olga P."),
		Mobile:   ptr.Ptr("9990001122"),
	})
	require.NoError(t, err)

	// Имя ушло в строку участника
	identity, ok := repo.identityPatches[11]
	require.True(t, ok)
	require.NotNil(t, identity.Name)
	assert.Equal(t, "Olga P.", *identity.Name)

	// Телефон общий на группу, патч ушел в бронирование
	shared, ok := repo.sharedPatches[1]
	require.True(t, ok)
	require.NotNil(t, shared.Mobile)
	assert.Equal(t, "9990001122", *shared.Mobile)
}

func TestUpdateMemberIdentityOnly(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	err := svc.UpdateMember(context.Background(), &models.UpdateMemberRequest{
		MemberID: 10,
		Age:      ptr.Ptr(31),
	})
	require.NoError(t, err)

	assert.Contains(t, repo.identityPatches, int64(10))
	assert.Empty(t, repo.sharedPatches)
}

func TestUpdateMemberValidation(t *testing.T) {
	svc := NewService(newFakeRepo(confirmedBooking(1)), fakeTxManager{}, noopLogger{})

	err := svc.UpdateMember(context.Background(), &models.UpdateMemberRequest{
		MemberID: 10,
		Mobile:   ptr.Ptr("12345"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateMember(context.Background(), &models.UpdateMemberRequest{
		MemberID: 10,
		Age:      ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateMemberNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeTxManager{}, noopLogger{})

	err := svc.UpdateMember(context.Background(), &models.UpdateMemberRequest{
		MemberID: 99,
		Name:     ptr.Ptr("Nobody"),
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetTentBookingsFilters(t *testing.T) {
	active := confirmedBooking(1)
	checkedOut := confirmedBooking(2)
	checkedOut.Status = domain.StatusCheckedOut
	repo := newFakeRepo(active, checkedOut)

	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.GetTentBookings(context.Background(), &models.GetTentBookingsRequest{TentID: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.GetTentBookings(context.Background(), &models.GetTentBookingsRequest{
		TentID:          5,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	_, err = svc.GetTentBookings(context.Background(), &models.GetTentBookingsRequest{
		TentID: 5,
		Status: ptr.Ptr("SLEEPING"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
