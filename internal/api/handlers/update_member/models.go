package update_member

import (
	"time"

	"github.com/m04kA/SMC-CampService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CampService/pkg/types"
)

// UpdateMemberRequest HTTP request model
// name/age/gender правят только этого участника; mobile/notes/даты
// общие для группы и применяются ко всему бронированию
type UpdateMemberRequest struct {
	Name   *string `json:"name,omitempty"`
	Age    *int    `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`

	Mobile       *string `json:"mobile,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CheckInDate  *string `json:"checkInDate,omitempty"`
	CheckOutDate *string `json:"checkOutDate,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateMemberRequest) ToServiceRequest(memberID int64) (*models.UpdateMemberRequest, error) {
	checkIn, err := parseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &models.UpdateMemberRequest{
		MemberID:     memberID,
		Name:         r.Name,
		Age:          r.Age,
		Gender:       r.Gender,
		Mobile:       r.Mobile,
		Notes:        r.Notes,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
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
