package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-CampService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CampService/pkg/types"
)

// MemberRequest участник группы; порядок в списке значим, первый — team head
type MemberRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TentID       int64           `json:"tentId"`
	Members      []MemberRequest `json:"members"`
	Mobile       string          `json:"mobile"`
	Notes        *string         `json:"notes,omitempty"`
	IsVIP        bool            `json:"isVip"`
	CheckInDate  *string         `json:"checkInDate,omitempty"`  // "2026-08-29"
	CheckOutDate *string         `json:"checkOutDate,omitempty"` // "2026-08-31"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(createdBy int64) (*createBooking.Request, error) {
	checkIn, err := parseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	members := make([]createBooking.MemberInput, len(r.Members))
	for i, m := range r.Members {
		members[i] = createBooking.MemberInput{
			Name:   m.Name,
			Age:    m.Age,
			Gender: m.Gender,
		}
	}

	return &createBooking.Request{
		TentID:       r.TentID,
		Members:      members,
		Mobile:       r.Mobile,
		Notes:        r.Notes,
		IsVIP:        r.IsVIP,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		CreatedBy:    createdBy,
	}, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	ds, err := types.NewDateStringFromString(*s)
	if err != nil {
		return nil, err
	}
	t, err := ds.Time(time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
