package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusCheckedIn  BookingStatus = "CHECKED_IN"
	StatusCheckedOut BookingStatus = "CHECKED_OUT"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// Gender represents a member's gender
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// IsValidGender проверяет допустимость значения gender
func IsValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Booking represents a group stay in a tent
type Booking struct {
	ID     int64
	TentID int64

	// Контактные данные общие на всю группу, хранятся на уровне бронирования
	Mobile       string
	Notes        *string
	IsVIP        bool
	CheckInDate  *time.Time
	CheckOutDate *time.Time

	Status    BookingStatus
	CreatedBy int64 // desk admin, создавший бронирование

	CancellationReason *string
	CancelledAt        *time.Time

	// Members упорядочены по position; member с position 0 — team head
	Members []Member

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member represents a single guest within a booking
type Member struct {
	ID        int64
	BookingID int64
	Position  int
	Name      string
	Age       int
	Gender    Gender
}

// IsActive returns true while the booking occupies tent capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanCheckIn returns true if the booking may transition to CHECKED_IN
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanCheckOut returns true if the booking may transition to CHECKED_OUT
// Выезд разрешен и напрямую из CONFIRMED: гость так и не заехал, но освобождает место
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the booking may transition to CANCELLED
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// MemberCount возвращает размер группы — вклад бронирования в занятость палатки
func (b *Booking) MemberCount() int {
	return len(b.Members)
}

// TeamHead returns the primary guest (position 0), or nil for an empty group
func (b *Booking) TeamHead() *Member {
	for i := range b.Members {
		if b.Members[i].Position == 0 {
			return &b.Members[i]
		}
	}
	return nil
}

// TentBookingsFilter фильтр для получения бронирований палатки
type TentBookingsFilter struct {
	TentID          int64          // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершенные/отмененные бронирования
}

// BookingSharedPatch частичное обновление групповых полей бронирования
/// Поля общие на всю группу: правка "контактов участника" на деле правит бронирование
type BookingSharedPatch struct {
	Mobile       *string
	Notes        *string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
}

// IsEmpty возвращает true, если патч не меняет ни одного поля
func (p *BookingSharedPatch) IsEmpty() bool {
	return p.Mobile == nil && p.Notes == nil && p.CheckInDate == nil && p.CheckOutDate == nil
}

// MemberIdentityPatch частичное обновление личных полей участника
type MemberIdentityPatch struct {
	Name   *string
	Age    *int
	Gender *Gender
}

// IsEmpty возвращает true, если патч не меняет ни одного поля
func (p *MemberIdentityPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Gender == nil
}

// OverdueStay просроченное проживание: гость заселен, плановая дата выезда прошла
type OverdueStay struct {
	BookingID    int64
	TentID       int64
	TentName     string
	SectorName   string
	EventID      int64
	CheckOutDate time.Time
	HeadName     string // имя team head для текста уведомления
	MemberCount  int
}
