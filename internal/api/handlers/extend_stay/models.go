package extend_stay

import (
	"time"

	"github.com/m04kA/SMC-CampService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CampService/pkg/types"
)

// ExtendStayRequest HTTP request model
type ExtendStayRequest struct {
	NewCheckOutDate string `json:"newCheckOutDate"` // "2026-09-02"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ExtendStayRequest) ToServiceRequest(bookingID int64) (*models.ExtendStayRequest, error) {
	ds, err := types.NewDateStringFromString(r.NewCheckOutDate)
	if err != nil {
		return nil, err
	}
	date, err := ds.Time(time.UTC)
	if err != nil {
		return nil, err
	}
	return &models.ExtendStayRequest{
		BookingID:       bookingID,
		NewCheckOutDate: date,
	}, nil
}
