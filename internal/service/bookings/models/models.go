package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ExtendStayRequest запрос на продление проживания
type ExtendStayRequest struct {
	BookingID       int64
	NewCheckOutDate time.Time
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BookingID          int64
	CancellationReason string
}

// UpdateMemberRequest запрос на редактирование участника
// Личные поля правят строку участника; mobile/notes/даты — групповые,
// они правят владеющее бронирование целиком
type UpdateMemberRequest struct {
	MemberID int64

	Name   *string
	Age    *int
	Gender *string

	Mobile       *string
	Notes        *string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
}

// IdentityPatch возвращает патч личных полей участника
func (r *UpdateMemberRequest) IdentityPatch() domain.MemberIdentityPatch {
	patch := domain.MemberIdentityPatch{
		Name: r.Name,
		Age:  r.Age,
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		patch.Gender = &g
	}
	return patch
}

// SharedPatch возвращает патч групповых полей бронирования
func (r *UpdateMemberRequest) SharedPatch() domain.BookingSharedPatch {
	return domain.BookingSharedPatch{
		Mobile:       r.Mobile,
		Notes:        r.Notes,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
	}
}

// GetTentBookingsRequest запрос на получение бронирований палатки
type GetTentBookingsRequest struct {
	TentID          int64
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTentBookingsRequest) ToDomainFilter() (domain.TentBookingsFilter, error) {
	filter := domain.TentBookingsFilter{
		TentID:          r.TentID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// MemberResponse участник группы
type MemberResponse struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	IsHead   bool   `json:"isHead"`
}

// BookingResponse бронирование с участниками
type BookingResponse struct {
	ID                 int64            `json:"id"`
	TentID             int64            `json:"tentId"`
	Mobile             string           `json:"mobile"`
	Notes              *string          `json:"notes,omitempty"`
	IsVIP              bool             `json:"isVip"`
	CheckInDate        *time.Time       `json:"checkInDate,omitempty"`
	CheckOutDate       *time.Time       `json:"checkOutDate,omitempty"`
	Status             string           `json:"status"`
	CreatedBy          int64            `json:"createdBy"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time       `json:"cancelledAt,omitempty"`
	Members            []MemberResponse `json:"members"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	members := make([]MemberResponse, 0, len(b.Members))
	for _, m := range b.Members {
		members = append(members, MemberResponse{
			ID:       m.ID,
			Position: m.Position,
			Name:     m.Name,
			Age:      m.Age,
			Gender:   string(m.Gender),
			IsHead:   m.Position == 0,
		})
	}

	return &BookingResponse{
		ID:                 b.ID,
		TentID:             b.TentID,
		Mobile:             b.Mobile,
		Notes:              b.Notes,
		IsVIP:              b.IsVIP,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		Status:             string(b.Status),
		CreatedBy:          b.CreatedBy,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		Members:            members,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusConfirmed, domain.StatusCheckedIn, domain.StatusCheckedOut, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
