package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Любая ошибка валидации отклоняет запрос целиком: частичное состояние
// (бронирование без участников, осиротевшие участники) не допускается
func validateRequest(req *Request) error {
	if req.TentID <= 0 {
		return fmt.Errorf("%w: tentId must be positive", ErrInvalidInput)
	}

	if !domain.IsValidMobile(req.Mobile) {
		return fmt.Errorf("%w: got %q", ErrInvalidMobile, req.Mobile)
	}

	if len(req.Members) == 0 {
		return ErrNoMembers
	}

	for i, member := range req.Members {
		if member.Name == "" {
			return fmt.Errorf("%w: member %d has empty name", ErrInvalidMember, i)
		}
		if !domain.IsValidMemberAge(member.Age) {
			return fmt.Errorf("%w: member %d has invalid age %d", ErrInvalidMember, i, member.Age)
		}
		if !domain.IsValidGender(domain.Gender(member.Gender)) {
			return fmt.Errorf("%w: member %d has invalid gender %q", ErrInvalidMember, i, member.Gender)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.CheckInDate != nil && req.CheckOutDate != nil {
		if dateOnly(*req.CheckOutDate).Before(dateOnly(*req.CheckInDate)) {
			return ErrInvalidDates
		}
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
